package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringToEnvironment(t *testing.T) {
	tests := []struct {
		in   string
		want Environment
	}{
		{in: "local", want: LOCAL_ENV},
		{in: "LOCAL", want: LOCAL_ENV},
		{in: "prod", want: PROD_ENV},
		{in: "staging", want: UNDEFINED_ENV},
		{in: "", want: UNDEFINED_ENV},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StringToEnvironment(tt.in))
		})
	}
}

func TestEnvironmentToString(t *testing.T) {
	assert.Equal(t, "local", EnvironmentToString(LOCAL_ENV))
	assert.Equal(t, "prod", EnvironmentToString(PROD_ENV))
	assert.Equal(t, "UNDEFINED", EnvironmentToString(UNDEFINED_ENV))
}

func TestEnvironmentChecks(t *testing.T) {
	assert.True(t, LOCAL_ENV.IsLocal())
	assert.False(t, LOCAL_ENV.IsProduction())
	assert.True(t, PROD_ENV.IsProduction())
	assert.False(t, UNDEFINED_ENV.IsLocal())
	assert.False(t, UNDEFINED_ENV.IsProduction())
}
