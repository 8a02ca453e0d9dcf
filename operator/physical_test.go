package operator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcdlib/dglap/operator"
)

// segmentMembers builds a full anomalous-dimension-basis member set with
// recognizable values per sector.
func segmentMembers(size int) map[operator.Sector]*operator.Member {
	m := make(map[operator.Sector]*operator.Member)
	for i, s := range []operator.Sector{
		operator.NSPlus, operator.NSMinus, operator.NSValence,
		operator.SingletQQ, operator.SingletQG, operator.SingletGQ, operator.SingletGG,
	} {
		member := operator.NewMember(size)
		for k := 0; k < size; k++ {
			member.Value[k][k] = float64(i + 1)
		}
		m[s] = member
	}
	return m
}

func TestAdToEvolMap_Labels(t *testing.T) {
	phys := operator.AdToEvolMap(segmentMembers(2), 5, 100.0, []int{4, 6})

	// singlet block, full valence, one (T, V) pair per flavor 2..5
	for _, label := range []string{
		"S.S", "S.g", "g.S", "g.g", "V.V",
		"V3.V3", "T3.T3", "V8.V8", "T8.T8", "V15.V15", "T15.T15", "V24.V24", "T24.T24",
	} {
		assert.Contains(t, phys.Members, label, "evolution basis at nf=5")
	}

	// intrinsic top is above nf and evolves with the identity
	require.Contains(t, phys.Members, "t+.t+", "intrinsic top survives")
	require.Contains(t, phys.Members, "t-.t-", "intrinsic top survives")
	assert.Equal(t, 1.0, phys.Members["t+.t+"].Value[0][0], "intrinsic sectors are identities")

	// intrinsic charm is light at nf=5, so it must not appear
	assert.NotContains(t, phys.Members, "c+.c+", "light quarks are not intrinsic")

	assert.Len(t, phys.Members, 15, "label count at nf=5 with intrinsic top")
	assert.Equal(t, 100.0, phys.FinalScale, "final scale carried through")
	assert.NotZero(t, phys.ID, "operators carry an identity")
}

func TestAdToEvolMap_NSCopies(t *testing.T) {
	members := segmentMembers(2)
	phys := operator.AdToEvolMap(members, 4, 10.0, nil)
	assert.Equal(t, members[operator.NSPlus].Value[0][0], phys.Members["T3.T3"].Value[0][0],
		"T sectors follow NS plus")
	assert.Equal(t, members[operator.NSMinus].Value[0][0], phys.Members["V3.V3"].Value[0][0],
		"V sectors follow NS minus")
	assert.Equal(t, members[operator.NSValence].Value[0][0], phys.Members["V.V"].Value[0][0],
		"full valence follows NS valence")
}

func TestIdentityOperator(t *testing.T) {
	phys := operator.IdentityOperator(3, 4, 42.0, nil)
	for label, m := range phys.Members {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				want := 0.0
				if i == j && label != "S.g" && label != "g.S" {
					want = 1.0
				}
				assert.Equal(t, want, m.Value[i][j], "%s[%d][%d]", label, i, j)
				assert.Zero(t, m.Error[i][j], "identity carries no error")
			}
		}
	}
	assert.Equal(t, 42.0, phys.FinalScale)
}

func TestPhysicalOperator_Join(t *testing.T) {
	upper := operator.IdentityOperator(2, 3, 50.0, nil)
	lower := operator.AdToEvolMap(segmentMembers(2), 3, 10.0, nil)

	out, err := upper.Join(lower)
	require.NoError(t, err, "identity must compose with a matching basis")
	assert.Equal(t, 50.0, out.FinalScale, "composition keeps the outer target scale")
	assert.Equal(t, lower.Members["V.V"].Value[0][0], out.Members["V.V"].Value[0][0],
		"identity join reproduces the lower operator")
	assert.NotEqual(t, upper.ID, out.ID, "composition mints a fresh identity")
}

func TestPhysicalOperator_JoinAccumulates(t *testing.T) {
	// two middle flavors feeding the same (target, input) pair must add
	a := operator.NewPhysicalOperator(map[string]*operator.Member{
		"S.S": operator.IdentityMember(1),
		"S.g": operator.IdentityMember(1),
	}, 10.0)
	b := operator.NewPhysicalOperator(map[string]*operator.Member{
		"S.S": operator.IdentityMember(1),
		"g.S": operator.IdentityMember(1),
	}, 5.0)
	out, err := a.Join(b)
	require.NoError(t, err)
	assert.Equal(t, 2.0, out.Members["S.S"].Value[0][0], "S.S + S.g·g.S accumulate")
}

func TestPhysicalOperator_JoinMissingLabel(t *testing.T) {
	upper := operator.AdToEvolMap(segmentMembers(2), 4, 50.0, nil) // exposes T15.T15
	lower := operator.AdToEvolMap(segmentMembers(2), 3, 10.0, nil) // cannot serve T15

	_, err := upper.Join(lower)
	require.ErrorIs(t, err, operator.ErrMissingMatchingLabel, "broken flavor chain must fail")
	assert.Contains(t, err.Error(), "T15", "the missing label is named")
}
