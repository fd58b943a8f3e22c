package gen

import (
	"github.com/syssam/entmap"
	"github.com/syssam/entmap/schema/field"
)

// Definitions derives entity definitions from the given schemas. Schemas
// not declared as entities are skipped silently; the remaining ones are
// processed in input order, with every field classified in declaration
// order.
//
// The first structural or classification failure aborts the whole call: no
// partial definition list is returned.
func Definitions(schemas ...*field.Schema) ([]*entmap.Definition, error) {
	defs := make([]*entmap.Definition, 0, len(schemas))
	for _, s := range schemas {
		if s.Kind() != field.KindEntity {
			continue
		}
		name := s.TypeName()
		if name == "" {
			return nil, entmap.NewEntityError("", entmap.ErrMissingName)
		}
		u := unwrap(s)
		if u.leaf.Type() != field.TypeObject {
			return nil, entmap.NewEntityError(name, entmap.ErrInvalidShape)
		}
		def := &entmap.Definition{
			Name:        name,
			Description: s.Description(),
			Properties:  make([]*entmap.Property, 0, len(u.leaf.Fields())),
		}
		for _, fs := range u.leaf.Fields() {
			p, err := classify(name, fs)
			if err != nil {
				return nil, err
			}
			def.Properties = append(def.Properties, p)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Relations derives the bidirectional relation graph from a definition
// list. The output holds one record per definition, in input order.
//
// Outgoing edges (ReferTos) follow property declaration order within each
// entity. Incoming edges (ReferredBys) follow the definition list order,
// then property order within each referencing entity. Two fields
// referencing the same entity produce two distinct edges. A definition is
// never scanned against itself, so a field referencing its own entity
// contributes a ReferTos edge but no ReferredBys entry.
func Relations(defs []*entmap.Definition) []*entmap.Relation {
	rels := make([]*entmap.Relation, 0, len(defs))
	for _, def := range defs {
		rel := &entmap.Relation{
			EntityName:  def.Name,
			ReferTos:    []*entmap.RelationEdge{},
			ReferredBys: []*entmap.RelationEdge{},
		}
		for _, p := range def.Properties {
			if p.IsReference() {
				rel.ReferTos = append(rel.ReferTos, &entmap.RelationEdge{
					EntityName:   p.Target,
					PropertyName: p.Name,
					Unique:       p.Unique,
				})
			}
		}
		for _, other := range defs {
			if other.Name == def.Name {
				continue
			}
			for _, p := range other.Properties {
				if p.IsReference() && p.Target == def.Name {
					rel.ReferredBys = append(rel.ReferredBys, &entmap.RelationEdge{
						EntityName:   other.Name,
						PropertyName: p.Name,
						Unique:       p.Unique,
					})
				}
			}
		}
		rels = append(rels, rel)
	}
	return rels
}
