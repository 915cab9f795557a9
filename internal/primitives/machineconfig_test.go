package primitives

import (
	"errors"
	"reflect"
	"testing"
)

func petConfig() *MachineConfig {
	return &MachineConfig{
		ID:      "pet",
		Initial: "normal",
		States: map[string]*StateConfig{
			"normal":   NewStateConfig().AddTransition("study", "busy"),
			"busy":     NewStateConfig().AddTransition("get_tired", "sleeping").AddTransition("get_hungry", "hungry"),
			"hungry":   NewStateConfig().AddTransition("eat", "normal"),
			"sleeping": NewStateConfig().AddTransition("get_hungry", "hungry").AddTransition("get_up", "normal"),
		},
	}
}

func TestMachineConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *MachineConfig
		wantErr bool
	}{
		{
			name:    "pet machine",
			config:  petConfig(),
			wantErr: false,
		},
		{
			name: "minimal valid",
			config: &MachineConfig{
				Initial: "state1",
				States: map[string]*StateConfig{
					"state1": NewStateConfig(),
				},
			},
			wantErr: false,
		},
		{
			name: "nil state definition is terminal",
			config: &MachineConfig{
				Initial: "state1",
				States: map[string]*StateConfig{
					"state1": nil,
				},
			},
			wantErr: false,
		},
		{
			name: "missing initial",
			config: &MachineConfig{
				States: map[string]*StateConfig{
					"state1": NewStateConfig(),
				},
			},
			wantErr: true,
		},
		{
			name: "initial not found",
			config: &MachineConfig{
				Initial: "missing",
				States: map[string]*StateConfig{
					"state1": NewStateConfig(),
				},
			},
			wantErr: true,
		},
		{
			name: "empty states",
			config: &MachineConfig{
				Initial: "state1",
				States:  map[string]*StateConfig{},
			},
			wantErr: true,
		},
		{
			name: "empty event name",
			config: &MachineConfig{
				Initial: "s1",
				States: map[string]*StateConfig{
					"s1": NewStateConfig().AddTransition("", "s1"),
				},
			},
			wantErr: true,
		},
		{
			name: "whitespace names are ordinary names",
			config: &MachineConfig{
				Initial: "a",
				States: map[string]*StateConfig{
					"a": NewStateConfig().AddTransition(" ", "a").AddTransition("go", " "),
					" ": NewStateConfig().AddTransition("\t", "a"),
				},
			},
			wantErr: false,
		},
		{
			name: "invalid transition target",
			config: &MachineConfig{
				Initial: "s1",
				States: map[string]*StateConfig{
					"s1": NewStateConfig().AddTransition("e", "missing"),
				},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, ErrConfig) {
					t.Errorf("expected ErrConfig, got %v", err)
				}
				var ce *ConfigError
				if !errors.As(err, &ce) {
					t.Errorf("expected *ConfigError, got %T", err)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestMachineConfigStateNames(t *testing.T) {
	got := petConfig().StateNames()
	want := []string{"busy", "hungry", "normal", "sleeping"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StateNames() = %v, want %v", got, want)
	}

	other := &MachineConfig{
		Initial: "a",
		States:  map[string]*StateConfig{"a": nil, "b": nil},
	}
	if got := other.StateNames(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("StateNames() = %v, want [a b]", got)
	}
}

func TestMachineConfigStatesWithEvent(t *testing.T) {
	c := petConfig()
	tests := []struct {
		event string
		want  []string
	}{
		{"get_hungry", []string{"busy", "sleeping"}},
		{"study", []string{"normal"}},
		{"eat", []string{"hungry"}},
		{"fly", []string{}},
		{"", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.event, func(t *testing.T) {
			got := c.StatesWithEvent(tt.event)
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StatesWithEvent(%q) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestMachineConfigTarget(t *testing.T) {
	c := petConfig()
	if got, ok := c.Target("busy", "get_tired"); !ok || got != "sleeping" {
		t.Errorf("Target(busy, get_tired) = %q, %v", got, ok)
	}
	if _, ok := c.Target("busy", "study"); ok {
		t.Error("unexpected transition busy/study")
	}
	if _, ok := c.Target("ghost", "study"); ok {
		t.Error("unexpected transition from undeclared state")
	}
}

func TestMachineConfigCloneIsDeep(t *testing.T) {
	orig := petConfig()
	clone := orig.Clone()

	orig.States["normal"].AddTransition("study", "hungry")
	orig.States["extra"] = NewStateConfig()
	orig.Initial = "extra"

	if clone.Initial != "normal" {
		t.Errorf("clone initial changed to %q", clone.Initial)
	}
	if _, ok := clone.States["extra"]; ok {
		t.Error("clone gained state added to original")
	}
	if got, _ := clone.Target("normal", "study"); got != "busy" {
		t.Errorf("clone transition changed to %q", got)
	}
}
