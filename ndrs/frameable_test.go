package ndrs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Axisflow/ndrs/csprng"
)

func TestFrameableKeyGenPutsInvertibleElementFirst(t *testing.T) {
	prm := tinyParams(t)
	kg := NewFrameableKeyGenerator(prm, csprng.NewDeterministicSource(200))

	kp, err := kg.GenKeyPair()
	require.NoError(t, err)
	require.True(t, prm.Ring.Invertible(kp.SK.Polys[0]))
	require.True(t, kp.PK.InnerProduct(kp.SK).Equal(prm.S))
}

func TestFakeSkeyGenProducesDoubleWitness(t *testing.T) {
	prm := tinyParams(t)
	kg := NewFrameableKeyGenerator(prm, csprng.NewDeterministicSource(201))

	victim, err := kg.GenKeyPair()
	require.NoError(t, err)

	fs := NewFrameableSigner(prm, csprng.NewDeterministicSource(202))
	forged, fakeSK, err := fs.FakeSkeyGen(victim)
	require.NoError(t, err)

	// S6: pk' . victim.sk == S AND pk' . fake_sk == S.
	require.True(t, forged.PK.InnerProduct(victim.SK).Equal(prm.S))
	require.True(t, forged.PK.InnerProduct(fakeSK).Equal(prm.S))
}

func TestFrameablySignBindsEvidenceToInnocentParty(t *testing.T) {
	prm := tinyParams(t)
	kg := NewFrameableKeyGenerator(prm, csprng.NewDeterministicSource(203))

	attacker, err := kg.GenKeyPair()
	require.NoError(t, err)
	victim, err := kg.GenKeyPair()
	require.NoError(t, err)
	bystander, err := kg.GenKeyPair()
	require.NoError(t, err)

	others := []*PublicKey{victim.PK, bystander.PK}
	msg := []byte("framing scenario")

	fs := NewFrameableSigner(prm, csprng.NewDeterministicSource(204))

	// The attacker places the victim at ring index 0 deterministically by
	// always framing index 0 and only trusting runs where the attacker's
	// own random slot did not land there too.
	const framedIdx = 0
	var sig *Signature
	for attempt := 0; attempt < 50; attempt++ {
		candidate, err := fs.FrameablySign(attacker, others, msg, framedIdx)
		require.NoError(t, err)
		if !candidate.PKs[framedIdx].Equal(attacker.PK) {
			sig = candidate
			break
		}
	}
	require.NotNil(t, sig, "expected at least one run where the attacker did not land at framedIdx")
	require.True(t, sig.PKs[framedIdx].Equal(victim.PK))

	v := NewVerifier(prm)
	require.True(t, v.Verify(msg, sig))

	eg := NewEvidenceGenerator(prm, csprng.NewDeterministicSource(205))

	// Property 7: the framed, innocent party's keypair produces evidence
	// that checks out against a signature they never touched.
	ev, err := eg.EvidenceGen(victim, msg, sig)
	require.NoError(t, err)

	ok, err := eg.EvidenceCheck(victim.PK, msg, sig, ev)
	require.NoError(t, err)
	require.True(t, ok)
}
