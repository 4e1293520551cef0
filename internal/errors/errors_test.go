package errors

import (
	stderrors "errors"
	"testing"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"auth", New(AuthFailed, "Credenciales inválidas"), AuthFailed},
		{"refresh", Wrap(RefreshFailed, "la sesión no pudo renovarse", stderrors.New("401")), RefreshFailed},
		{"network", Wrap(NetworkFailed, "network error", stderrors.New("dial tcp")), NetworkFailed},
		{"unauthorized", New(Unauthorized, "acceso denegado"), Unauthorized},
		{"wrapped deeper", Wrap(AuthFailed, "outer", Wrap(RefreshFailed, "inner", nil)), AuthFailed},
		{"untyped", stderrors.New("plain"), Kind("")},
		{"nil", nil, Kind("")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.want {
				t.Fatalf("KindOf() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMessageOf(t *testing.T) {
	if got := MessageOf(New(AuthFailed, "Error en el login")); got != "Error en el login" {
		t.Fatalf("MessageOf() = %q", got)
	}
	if got := MessageOf(stderrors.New("plain")); got != "plain" {
		t.Fatalf("MessageOf() untyped = %q", got)
	}
	if got := MessageOf(nil); got != "" {
		t.Fatalf("MessageOf(nil) = %q", got)
	}
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := stderrors.New("refresh token inválido")
	err := Wrap(RefreshFailed, "la sesión no pudo renovarse", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("wrapped cause not reachable via errors.Is")
	}
}
