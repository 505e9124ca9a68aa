package linkproof_test

import (
	"bytes"
	"testing"
	"time"

	"oroid/internal/crypto"
	"oroid/internal/domain"
	"oroid/internal/protocol/linkproof"
)

type party struct {
	did  domain.DID
	priv domain.Ed25519Private
	pub  domain.Ed25519Public
}

func makeParty(t *testing.T) party {
	t.Helper()
	priv, pub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}
	return party{did: crypto.DeriveDID("oro", pub), priv: priv, pub: pub}
}

func makeProof(t *testing.T, a, b party) domain.LinkProof {
	t.Helper()
	didA, didB := linkproof.Canonical(a.did, b.did)
	if didA != a.did {
		a, b = b, a
	}
	signedAt := time.Now().UTC()
	sigA, sigB := linkproof.Sign(didA, didB, a.priv, b.priv, signedAt)
	return domain.LinkProof{
		DIDA:       didA,
		DIDB:       didB,
		SignedAt:   signedAt,
		SignatureA: sigA,
		SignatureB: sigB,
	}
}

func TestCanonicalOrdering(t *testing.T) {
	x, y := linkproof.Canonical("did:oro:b", "did:oro:a")
	if x != "did:oro:a" || y != "did:oro:b" {
		t.Fatalf("bad canonical order: %s, %s", x, y)
	}
	x, y = linkproof.Canonical("did:oro:a", "did:oro:b")
	if x != "did:oro:a" || y != "did:oro:b" {
		t.Fatalf("already-ordered pair changed: %s, %s", x, y)
	}
}

func TestPayload_BindsAllFields(t *testing.T) {
	at := time.Now().UTC()
	base := linkproof.Payload("did:oro:a", "did:oro:b", at)

	if bytes.Equal(base, linkproof.Payload("did:oro:x", "did:oro:b", at)) {
		t.Fatal("payload ignores first DID")
	}
	if bytes.Equal(base, linkproof.Payload("did:oro:a", "did:oro:x", at)) {
		t.Fatal("payload ignores second DID")
	}
	if bytes.Equal(base, linkproof.Payload("did:oro:a", "did:oro:b", at.Add(time.Second))) {
		t.Fatal("payload ignores timestamp")
	}
}

func TestSignVerify_BothSides(t *testing.T) {
	a := makeParty(t)
	b := makeParty(t)
	proof := makeProof(t, a, b)

	pubA, pubB := a.pub, b.pub
	if proof.DIDA != a.did {
		pubA, pubB = b.pub, a.pub
	}
	if !linkproof.Verify(proof, pubA, pubB) {
		t.Fatal("valid proof rejected")
	}
	// Swapped keys must fail: each signature is bound to its side.
	if linkproof.Verify(proof, pubB, pubA) {
		t.Fatal("proof verified with swapped public keys")
	}
}

func TestVerify_TamperedProof(t *testing.T) {
	a := makeParty(t)
	b := makeParty(t)
	proof := makeProof(t, a, b)

	pubA, pubB := a.pub, b.pub
	if proof.DIDA != a.did {
		pubA, pubB = b.pub, a.pub
	}

	tampered := proof.Clone()
	tampered.SignedAt = tampered.SignedAt.Add(time.Minute)
	if linkproof.Verify(tampered, pubA, pubB) {
		t.Fatal("proof with altered timestamp verified")
	}

	tampered = proof.Clone()
	tampered.SignatureB = tampered.SignatureA
	if linkproof.Verify(tampered, pubA, pubB) {
		t.Fatal("proof with duplicated signature verified")
	}
}
