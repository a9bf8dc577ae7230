package sym

import (
	"errors"
	"testing"
)

func TestPublicSurface(t *testing.T) {
	env := NewEnv()
	env.SetHint("batch", 32)

	batch := IntFromNode(env.Var("batch"))
	defer batch.Release()

	padded := batch.AddInt(7).FloorDiv(NewInt(8)).MulInt(8)
	defer padded.Release()

	if !padded.IsSymbolic() {
		t.Fatalf("expression over a variable is concrete")
	}

	rec := NewMemoryRecorder()
	env.SetRecorder(rec)

	v, err := padded.GuardInt(Location{File: "model.go", Line: 12})
	if err != nil {
		t.Fatalf("GuardInt: %v", err)
	}
	if v != 32 {
		t.Errorf("padded batch = %d, want 32", v)
	}
	if rec.Len() != 1 {
		t.Errorf("recorded %d guard events, want 1", rec.Len())
	}
}

func TestPublicUnbacked(t *testing.T) {
	env := NewEnv()
	u := IntFromNode(env.Var("u"))
	defer u.Release()

	_, err := u.GuardInt(Location{})
	if !errors.Is(err, ErrUnbacked) {
		t.Errorf("error = %v, want ErrUnbacked", err)
	}
}
