package config

import (
	"strings"
)

type Environment int32

// The data holder only distinguishes two deployments: a local run against a
// seed file, and a hosted one. Everything unrecognised is treated as hosted.
const (
	UNDEFINED_ENV Environment = iota
	LOCAL_ENV
	PROD_ENV
)

func StringToEnvironment(s string) Environment {
	switch strings.ToLower(s) {
	case "local":
		return LOCAL_ENV
	case "prod":
		return PROD_ENV
	default:
		return UNDEFINED_ENV
	}
}

func EnvironmentToString(e Environment) string {
	switch e {
	case LOCAL_ENV:
		return "local"
	case PROD_ENV:
		return "prod"
	default:
		return "UNDEFINED"
	}
}

func (e Environment) IsLocal() bool {
	return e == LOCAL_ENV
}

func (e Environment) IsProduction() bool {
	return e == PROD_ENV
}
