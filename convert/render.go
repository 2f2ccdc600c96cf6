package convert

import (
	"fmt"
	"strings"

	"polkameta.dev/framemeta/scaleinfo"
)

// resolveType looks id up in the registry. Every reference reaching the
// renderer must resolve; a miss is fatal to the whole conversion.
func (c *converter) resolveType(id scaleinfo.TypeID) (*scaleinfo.Type, error) {
	ty, ok := c.meta.Types.Resolve(id)
	if !ok {
		return nil, newError(KindTypeNotFound, fmt.Sprintf("type %d not found", id))
	}
	return ty, nil
}

// typeIdent renders the canonical display name of a type: the declared
// identifier for composites and variants, and a structural rendering
// for everything else (Vec<T>, [T; N], (A, B), Compact<T>, ...).
//
// The recursion assumes the type universe is a DAG, which the upstream
// registry guarantees by construction.
func (c *converter) typeIdent(id scaleinfo.TypeID) (string, error) {
	ty, err := c.resolveType(id)
	if err != nil {
		return "", err
	}
	def := ty.Def
	switch {
	case def.Composite != nil, def.Variant != nil:
		ident := ty.Path.Ident()
		if ident == "" {
			return "", newError(KindMissingTypeName, fmt.Sprintf("type %d has no name to render", id))
		}
		return ident, nil
	case def.Sequence != nil:
		elem, err := c.typeIdent(def.Sequence.Elem)
		if err != nil {
			return "", err
		}
		return "Vec<" + elem + ">", nil
	case def.Array != nil:
		elem, err := c.typeIdent(def.Array.Elem)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[%s; %d]", elem, def.Array.Len), nil
	case def.Tuple != nil:
		elems := make([]string, 0, len(def.Tuple.Elems))
		for _, elem := range def.Tuple.Elems {
			s, err := c.typeIdent(elem)
			if err != nil {
				return "", err
			}
			elems = append(elems, s)
		}
		return "(" + strings.Join(elems, ", ") + ")", nil
	case def.Primitive != nil:
		return primitiveIdent(*def.Primitive), nil
	case def.Compact != nil:
		elem, err := c.typeIdent(def.Compact.Elem)
		if err != nil {
			return "", err
		}
		return "Compact<" + elem + ">", nil
	case def.BitSequence != nil:
		order, err := c.typeIdent(def.BitSequence.Order)
		if err != nil {
			return "", err
		}
		store, err := c.typeIdent(def.BitSequence.Store)
		if err != nil {
			return "", err
		}
		return "BitVec<" + order + ", " + store + ">", nil
	default:
		return "", newError(KindInvariant, fmt.Sprintf("type %d has an empty definition", id))
	}
}

// fieldTypeName renders the display name of a variant field, preferring
// the name the field was declared with over the resolved type's own
// identifier. A declared name over a compact-encoded type is re-wrapped
// as Compact<name> so the encoding signal is not lost.
func (c *converter) fieldTypeName(f scaleinfo.Field) (string, error) {
	if f.TypeName == "" {
		return c.typeIdent(f.Type)
	}
	ty, err := c.resolveType(f.Type)
	if err != nil {
		return "", err
	}
	if ty.Def.Compact != nil {
		return "Compact<" + f.TypeName + ">", nil
	}
	return f.TypeName, nil
}

// primitiveIdent is the fixed display table for primitive types.
func primitiveIdent(p scaleinfo.Primitive) string {
	switch p {
	case scaleinfo.U256:
		return "U256"
	case scaleinfo.I256:
		return "I256"
	default:
		return string(p)
	}
}
