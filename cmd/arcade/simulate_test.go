package main

import (
	"testing"

	"github.com/vovakirdan/arcade-sim/internal/core"
)

func TestNewPolicy(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"idle", false},
		{"random", false},
		{"jumper", false},
		{"psychic", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := newPolicy(tc.name, 1, 60)
			if (err != nil) != tc.wantErr {
				t.Fatalf("newPolicy() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err == nil && p == nil {
				t.Error("expected a policy")
			}
		})
	}
}

func TestJumperPeriod(t *testing.T) {
	p, err := newPolicy("jumper", 1, 60)
	if err != nil {
		t.Fatal(err)
	}
	jumps := 0
	for i := 0; i < 120; i++ {
		if p.Poll().Has(core.ActionJump) {
			jumps++
		}
	}
	if jumps != 4 {
		t.Errorf("jumps in two seconds = %d, expected 4", jumps)
	}
}

func TestRandomPolicyDeterministic(t *testing.T) {
	a, _ := newPolicy("random", 9, 60)
	b, _ := newPolicy("random", 9, 60)
	for i := 0; i < 300; i++ {
		fa, fb := a.Poll(), b.Poll()
		for _, act := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionJump} {
			if fa.Has(act) != fb.Has(act) {
				t.Fatalf("tick %d: policies diverged", i)
			}
		}
	}
}
