package curvePoints

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/curve448/goldilocks/internal/testutils"
)

// genCurvePoint generates pseudo-random multiples of the generator.
func genCurvePoint() gopter.Gen {
	gen := Generator()
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		k := new(big.Int).Rand(genParams.Rng, groupOrderForTesting)
		p := scalarMulTestOnly(k, &gen)
		return gopter.NewGenResult(p, gopter.NoShrinker)
	}
}

func TestGroupLawProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	properties := gopter.NewProperties(parameters)

	properties.Property("P + Q == Q + P", prop.ForAll(
		func(p, q ExtendedPoint) bool {
			var lhs, rhs ExtendedPoint
			lhs.Add(&p, &q)
			rhs.Add(&q, &p)
			return lhs.IsEqual(&rhs)
		},
		genCurvePoint(),
		genCurvePoint(),
	))

	properties.Property("(P + Q) + R == P + (Q + R)", prop.ForAll(
		func(p, q, r ExtendedPoint) bool {
			var lhs, rhs ExtendedPoint
			lhs.Add(&p, &q)
			lhs.Add(&lhs, &r)
			rhs.Add(&q, &r)
			rhs.Add(&p, &rhs)
			return lhs.IsEqual(&rhs)
		},
		genCurvePoint(),
		genCurvePoint(),
		genCurvePoint(),
	))

	properties.Property("P + (-P) == identity", prop.ForAll(
		func(p ExtendedPoint) bool {
			var neg, sum ExtendedPoint
			neg.Negate(&p)
			sum.Add(&p, &neg)
			id := Identity()
			return sum.IsEqual(&id)
		},
		genCurvePoint(),
	))

	properties.Property("2*P == P + P", prop.ForAll(
		func(p ExtendedPoint) bool {
			var dbl, sum ExtendedPoint
			dbl.Double(&p)
			sum.Add(&p, &p)
			return dbl.IsEqual(&sum) && dbl.IsOnCurve()
		},
		genCurvePoint(),
	))

	properties.Property("projective law matches the affine reference law", prop.ForAll(
		func(p, q ExtendedPoint) bool {
			var sum ExtendedPoint
			sum.Add(&p, &q)
			pa, qa := p.ToAffine(), q.ToAffine()
			var expected AffinePoint
			expected.Add(&pa, &qa)
			got := sum.ToAffine()
			return got.IsEqual(&expected)
		},
		genCurvePoint(),
		genCurvePoint(),
	))

	properties.Property("mixed Niels addition matches extended addition", prop.ForAll(
		func(p, q ExtendedPoint) bool {
			qAffine := q.ToAffine()
			niels := qAffine.ToAffineNiels()
			acc := p.ToExtensible()
			acc.AddAffineNiels(&acc, &niels)
			mixed := acc.ToExtended()
			var expected ExtendedPoint
			expected.Add(&p, &q)
			return mixed.IsEqual(&expected) && mixed.IsOnCurve()
		},
		genCurvePoint(),
		genCurvePoint(),
	))

	properties.Property("mixed Niels subtraction matches addition of the negation", prop.ForAll(
		func(p, q ExtendedPoint) bool {
			qAffine := q.ToAffine()
			niels := qAffine.ToAffineNiels()
			acc := p.ToExtensible()
			acc.SubAffineNiels(&acc, &niels)
			var negQ, expected ExtendedPoint
			negQ.Negate(&q)
			expected.Add(&p, &negQ)
			got := acc.ToExtended()
			return got.IsEqual(&expected)
		},
		genCurvePoint(),
		genCurvePoint(),
	))

	properties.Property("arithmetic preserves the curve equation and T*Z == X*Y", prop.ForAll(
		func(p, q ExtendedPoint) bool {
			var sum ExtendedPoint
			sum.Add(&p, &q)
			return sum.IsOnCurve()
		},
		genCurvePoint(),
		genCurvePoint(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestConversionRoundTrips(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	properties := gopter.NewProperties(parameters)

	properties.Property("extended -> affine -> extended is the same point", prop.ForAll(
		func(p ExtendedPoint) bool {
			a := p.ToAffine()
			back := a.ToExtended()
			return back.IsEqual(&p) && a.IsOnCurve()
		},
		genCurvePoint(),
	))

	properties.Property("extended -> extensible -> extended is the same representative", prop.ForAll(
		func(p ExtendedPoint) bool {
			extensible := p.ToExtensible()
			back := extensible.ToExtended()
			return back.x.IsEqual(&p.x) && back.y.IsEqual(&p.y) && back.z.IsEqual(&p.z) && back.t.IsEqual(&p.t)
		},
		genCurvePoint(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestExtensibleDeferredT(t *testing.T) {
	// after any extensible operation, T1*T2 must equal the extended T, i.e.
	// T1*T2*Z == X*Y
	checkT := func(p *ExtensiblePoint) bool {
		var lhs, rhs FieldElement
		lhs.Mul(&p.t1, &p.t2)
		lhs.MulEq(&p.z)
		rhs.Mul(&p.x, &p.y)
		return lhs.IsEqual(&rhs)
	}

	samples := curvePointSamples(t, "deferred T", 10)
	for i := range samples {
		acc := samples[i].ToExtensible()
		testutils.FatalUnless(t, checkT(&acc), "T1*T2 invariant broken after SetExtended")
		acc.DoubleEq()
		testutils.FatalUnless(t, checkT(&acc), "T1*T2 invariant broken after Double")
		acc.Add(&acc, &samples[(i+1)%len(samples)])
		testutils.FatalUnless(t, checkT(&acc), "T1*T2 invariant broken after Add")
		affine := samples[(i+2)%len(samples)].ToAffine()
		niels := affine.ToAffineNiels()
		acc.AddAffineNiels(&acc, &niels)
		testutils.FatalUnless(t, checkT(&acc), "T1*T2 invariant broken after AddAffineNiels")
	}
}

func TestExtensibleIdentityAndEquality(t *testing.T) {
	var id ExtensiblePoint
	id.SetIdentity()
	idExtended := id.ToExtended()
	expected := Identity()
	require.True(t, idExtended.IsEqual(&expected))

	// adding the identity changes nothing
	for _, p := range curvePointSamples(t, "extensible identity", 10) {
		acc := id
		acc.Add(&acc, &p)
		got := acc.ToExtended()
		testutils.FatalUnless(t, got.IsEqual(&p), "identity + P != P")

		pExtensible := p.ToExtensible()
		extendedId := Identity()
		pExtensible.Add(&pExtensible, &extendedId)
		got = pExtensible.ToExtended()
		testutils.FatalUnless(t, got.IsEqual(&p), "P + identity != P")
	}
}

func TestProjectiveEqualityIgnoresScaling(t *testing.T) {
	gen := Generator()
	lambda := gen.X_projective() // any nonzero field element works
	for _, p := range curvePointSamples(t, "scaling", 10) {
		scaled := p
		scaled.x.MulEq(&lambda)
		scaled.y.MulEq(&lambda)
		scaled.z.MulEq(&lambda)
		scaled.t.MulEq(&lambda)
		testutils.FatalUnless(t, scaled.IsOnCurve(), "scaled representative fails curve check")
		testutils.FatalUnless(t, scaled.IsEqual(&p), "projective equality rejects a scaled representative")

		// but the Torque translate is a genuinely different curve point
		var torqued ExtendedPoint
		torqued.Torque(&p)
		testutils.FatalUnless(t, torqued.IsOnCurve(), "torqued representative fails curve check")
		testutils.FatalUnless(t, !torqued.IsEqual(&p), "Torque(P) compares equal to P as a curve point")

		// and torquing twice gives back a representative of the same point
		torqued.Torque(&torqued)
		testutils.FatalUnless(t, torqued.IsEqual(&p), "Torque is not an involution")
	}
}

func TestTorqueIsAdditionOfOrderTwoPoint(t *testing.T) {
	a := AffineOrderTwoPoint()
	require.True(t, a.IsOnCurve())
	orderTwo := a.ToExtended()

	for _, p := range curvePointSamples(t, "torque", 10) {
		var viaAdd, viaTorque ExtendedPoint
		viaAdd.Add(&p, &orderTwo)
		viaTorque.Torque(&p)
		testutils.FatalUnless(t, viaAdd.IsEqual(&viaTorque), "Torque(P) != P + (0, -1)")
	}
}

func TestGeneratorAndGroupOrder(t *testing.T) {
	gen := Generator()
	require.True(t, gen.IsOnCurve())
	id := Identity()
	require.True(t, id.IsOnCurve())
	require.True(t, groupOrderForTesting.ProbablyPrime(20))

	// l*B is the affine two-torsion point: the generator has order 2*l on the
	// curve, order l in the quotient group.
	lB := scalarMulTestOnly(groupOrderForTesting, &gen)
	orderTwo := AffineOrderTwoPoint()
	expected := orderTwo.ToExtended()
	require.True(t, lB.IsEqual(&expected))

	var torqued ExtendedPoint
	torqued.Torque(&lB)
	require.True(t, torqued.IsEqual(&id))
}

func TestBatchToAffine(t *testing.T) {
	points := curvePointSamples(t, "batch", 30)
	affine := BatchToAffine(points)
	require.Equal(t, len(points), len(affine))
	for i := range points {
		expected := points[i].ToAffine()
		testutils.FatalUnless(t, affine[i].IsEqual(&expected), "BatchToAffine disagrees with ToAffine at index %v", i)
	}

	require.Empty(t, BatchToAffine(nil))

	// Z == 0 is a broken invariant and must panic, not return garbage.
	bad := make([]ExtendedPoint, 2)
	bad[0] = points[0]
	// bad[1] keeps its zero value, so Z == 0
	if !testutils.CheckPanic(func() { BatchToAffine(bad) }) {
		t.Fatalf("BatchToAffine did not panic on Z == 0")
	}
}

func TestConditionalOpsOnExtendedPoints(t *testing.T) {
	samples := curvePointSamples(t, "extended select", 2)
	p, q := samples[0], samples[1]

	var sel ExtendedPoint
	sel.ConditionalSelect(&p, &q, 1)
	require.True(t, sel.IsEqual(&p))
	sel.ConditionalSelect(&p, &q, 0)
	require.True(t, sel.IsEqual(&q))

	sel.CMove(&p, 0)
	require.True(t, sel.IsEqual(&q))
	sel.CMove(&p, 1)
	require.True(t, sel.IsEqual(&p))
}
