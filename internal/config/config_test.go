package config

import "testing"

func valid() Config {
	c := Default()
	c.Item = "HD800"
	c.MinPrice = 300
	c.MaxPrice = 900
	return c
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(c *Config) {}, true},
		{"missing item", func(c *Config) { c.Item = "" }, false},
		{"zero min price", func(c *Config) { c.MinPrice = 0 }, false},
		{"max below min", func(c *Config) { c.MaxPrice = 100 }, false},
		{"max equals min", func(c *Config) { c.MaxPrice = c.MinPrice }, false},
		{"zero days", func(c *Config) { c.DaysBack = 0 }, false},
		{"no venues", func(c *Config) { c.Venues = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.ok && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.DaysBack != 30 {
		t.Errorf("expected 30 day default, got %d", c.DaysBack)
	}
	if len(c.Venues) != 2 {
		t.Errorf("expected default venue pair, got %v", c.Venues)
	}
}

func TestMissingCredentials_MockMode(t *testing.T) {
	// Mock collection needs no Reddit credentials.
	if missing := MissingCredentials("mock"); len(missing) != 0 {
		t.Errorf("expected no required credentials in mock mode, got %v", missing)
	}
}
