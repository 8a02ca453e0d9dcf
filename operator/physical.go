package operator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrMissingMatchingLabel reports a flavor label required by the
// composition that the neighboring operator cannot serve, typically a
// missing intrinsic heavy-quark sector in a matching operator.
var ErrMissingMatchingLabel = errors.New("operator: no operator serves flavor label")

// heavyQuarkNames maps flavor 4, 5, 6 onto the intrinsic label stems.
var heavyQuarkNames = [3]string{"c", "b", "t"}

// PhysicalOperator is the outward face of the engine: evolution-basis
// members keyed "target.input", ready to contract against a parton
// distribution vector. Each computed operator carries a unique ID.
type PhysicalOperator struct {
	ID         uuid.UUID
	FinalScale float64
	Members    map[string]*Member
}

// NewPhysicalOperator wraps members evolving to finalScale under a fresh
// identity.
func NewPhysicalOperator(members map[string]*Member, finalScale float64) *PhysicalOperator {
	return &PhysicalOperator{ID: uuid.New(), FinalScale: finalScale, Members: members}
}

// EvolLabel spells the evolution-basis key for a (target, input) pair.
func EvolLabel(target, input string) string { return target + "." + input }

func splitLabel(label string) (target, input string) {
	i := strings.IndexByte(label, '.')
	return label[:i], label[i+1:]
}

// AdToEvolMap lifts segment members from the anomalous-dimension basis
// to the evolution basis at flavor count nf: the singlet block, the full
// valence, one (T, V) pair per active flavor beyond the first, and an
// identity for every intrinsic heavy flavor above nf (intrinsic means no
// evolution).
func AdToEvolMap(members map[Sector]*Member, nf int, finalScale float64, intrinsic []int) *PhysicalOperator {
	m := map[string]*Member{
		"S.S": members[SingletQQ].Copy(),
		"S.g": members[SingletQG].Copy(),
		"g.S": members[SingletGQ].Copy(),
		"g.g": members[SingletGG].Copy(),
		"V.V": members[NSValence].Copy(),
	}
	for f := 2; f <= nf; f++ {
		n := f*f - 1
		m[fmt.Sprintf("V%d.V%d", n, n)] = members[NSMinus].Copy()
		m[fmt.Sprintf("T%d.T%d", n, n)] = members[NSPlus].Copy()
	}
	id := IdentityMember(members[NSValence].Size())
	for _, f := range intrinsic {
		if f <= nf {
			// light quarks are not intrinsic
			continue
		}
		hq := heavyQuarkNames[f-4]
		m[hq+"+."+hq+"+"] = id.Copy()
		m[hq+"-."+hq+"-"] = id.Copy()
	}
	return NewPhysicalOperator(m, finalScale)
}

// IdentityOperator is the zero-evolution operator at flavor count nf:
// every evolution-basis label maps to the identity member. It serves
// targets whose evolution path is empty.
func IdentityOperator(size, nf int, finalScale float64, intrinsic []int) *PhysicalOperator {
	members := make(map[Sector]*Member, len(allSectors))
	for _, s := range allSectors {
		if s == SingletQG || s == SingletGQ {
			members[s] = NewMember(size)
			continue
		}
		members[s] = IdentityMember(size)
	}
	return AdToEvolMap(members, nf, finalScale, intrinsic)
}

// Join composes p after other: result = p·other, accumulating over the
// shared middle flavor. Every member of p must find at least one
// counterpart serving its input flavor, otherwise the evolution chain is
// broken and the offending label is reported.
func (p *PhysicalOperator) Join(other *PhysicalOperator) (*PhysicalOperator, error) {
	out := make(map[string]*Member)
	for labelP, mp := range p.Members {
		target, mid := splitLabel(labelP)
		served := false
		for labelO, mo := range other.Members {
			t2, input := splitLabel(labelO)
			if t2 != mid {
				continue
			}
			served = true
			prod, err := mp.Join(mo)
			if err != nil {
				return nil, fmt.Errorf("joining %s with %s: %w", labelP, labelO, err)
			}
			key := EvolLabel(target, input)
			if existing, ok := out[key]; ok {
				sum, err := existing.Add(prod)
				if err != nil {
					return nil, err
				}
				out[key] = sum
			} else {
				out[key] = prod
			}
		}
		if !served {
			return nil, fmt.Errorf("%w: %q (needed by %q)", ErrMissingMatchingLabel, mid, labelP)
		}
	}
	return NewPhysicalOperator(out, p.FinalScale), nil
}
