package auth

import "testing"

func TestService_LoginAndTokenRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatal(err)
	}
	svc := NewService("test-secret", hash)

	if !svc.Login("hunter2") {
		t.Error("correct password rejected")
	}
	if svc.Login("wrong") {
		t.Error("wrong password accepted")
	}

	token, err := svc.GenerateToken()
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.ValidateToken(token); err != nil {
		t.Errorf("freshly issued token rejected: %v", err)
	}
}

func TestService_RejectsForeignToken(t *testing.T) {
	hash, _ := HashPassword("pw")
	issuer := NewService("secret-a", hash)
	verifier := NewService("secret-b", hash)

	token, err := issuer.GenerateToken()
	if err != nil {
		t.Fatal(err)
	}
	if err := verifier.ValidateToken(token); err == nil {
		t.Error("token signed with a different secret was accepted")
	}
}

func TestService_RejectsGarbageToken(t *testing.T) {
	svc := NewService("secret", "")
	if err := svc.ValidateToken("not.a.token"); err == nil {
		t.Error("garbage token accepted")
	}
}
