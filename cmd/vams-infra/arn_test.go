package main

import "testing"

func TestNewArnCmd(t *testing.T) {
	cmd := newArnCmd()

	if cmd.Use != "arn <service> <resource-id>" {
		t.Errorf("Use = %q, want 'arn <service> <resource-id>'", cmd.Use)
	}

	for _, name := range []string{"partition", "region", "account", "name"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("missing --%s flag", name)
		}
	}
}
