package helpers

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("securepassword123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "securepassword123" {
		t.Fatal("hash equals the plain password")
	}

	if !CompareHashAndPassword(hash, "securepassword123") {
		t.Fatal("expected correct password to match")
	}
	if CompareHashAndPassword(hash, "wrongpassword") {
		t.Fatal("expected wrong password to fail")
	}
}
