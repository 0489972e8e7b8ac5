package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	if hash == "correct horse battery staple" {
		t.Error("hash should not equal the plaintext")
	}
	if !Verify(hash, "correct horse battery staple") {
		t.Error("Verify should accept the original password")
	}
	if Verify(hash, "wrong password") {
		t.Error("Verify should reject a different password")
	}
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("same input")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	b, err := Hash("same input")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same input should differ")
	}
}

func TestVerifyGarbageHash(t *testing.T) {
	if Verify("not-a-bcrypt-hash", "anything") {
		t.Error("Verify should reject a malformed hash")
	}
}
