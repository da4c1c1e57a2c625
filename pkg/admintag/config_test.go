package admintag_test

import (
	"errors"
	"testing"

	"github.com/Adirelle/efadmintag/pkg/admintag"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()
	cases := map[string]struct {
		staff, ops []string
		valid      bool
	}{
		"defaults":      {admintag.NewConfig().StaffGroups, admintag.NewConfig().OpGroups, true},
		"no op groups":  {[]string{"admin"}, nil, true},
		"case mismatch": {[]string{"admin"}, []string{"Admin"}, true},
		"unknown group": {[]string{"moderator"}, []string{"admin"}, false},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			conf := admintag.Config{StaffGroups: tc.staff, OpGroups: tc.ops, HiddenGroupKey: "hidden"}
			err := conf.Validate()
			if tc.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			} else if !tc.valid && !errors.Is(err, admintag.ErrUnknownOpGroup) {
				t.Errorf("expected ErrUnknownOpGroup, got %v", err)
			}
		})
	}
}

func TestIsOpGroupIgnoresCase(t *testing.T) {
	t.Parallel()
	conf := admintag.NewConfig()
	if !conf.IsOpGroup("ADMIN") || conf.IsOpGroup("moderator") {
		t.Error("unexpected operator groups")
	}
}
