package signup

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"
)

func TestValidName(t *testing.T) {
	cases := map[string]bool{
		"alice":         true,
		"Bob":           true,
		"a":             true,
		"":              false,
		"thirteenchars": false,
		"name123":       false,
		"na me":         false,
	}
	for name, want := range cases {
		if got := validName(name); got != want {
			t.Errorf("validName(%q) = %v, want %v", name, got, want)
		}
	}
}

func dialAndSendName(t *testing.T, addr string, name string) {
	t.Helper()
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	data, _ := json.Marshal(name)
	if _, err := conn.Write(data); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func TestRunCollectsValidSignups(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	defer ln.Close()

	names := []string{"alice", "bob", "carol", "dave", "erin"}
	for _, n := range names {
		go dialAndSendName(t, ln.Addr().String(), n)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	clients, err := Run(ctx, ln, 500*time.Millisecond)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(clients) != len(names) {
		t.Fatalf("expected %d signed-up clients, got %d", len(names), len(clients))
	}
	for _, c := range clients {
		c.Conn.Close()
	}
}

func TestRunTooFewSignupsReturnsError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	defer ln.Close()

	go dialAndSendName(t, ln.Addr().String(), "alice")
	go dialAndSendName(t, ln.Addr().String(), "bob")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err = Run(ctx, ln, 200*time.Millisecond)
	if err != ErrTooFewSignups {
		t.Fatalf("expected ErrTooFewSignups, got %v", err)
	}
}
