package env

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// LoadDotEnv reads the given file (e.g. ".env") and sets process environment
// variables for each line of the form KEY=VALUE. Empty lines and lines
// starting with # are skipped. The file may be missing; that is not an error.
func LoadDotEnv(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		i := strings.Index(line, "=")
		if i <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:i])
		value := strings.TrimSpace(line[i+1:])
		if key == "" {
			continue
		}
		// Remove surrounding quotes if present
		if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
		_ = os.Setenv(key, value)
	}
	return scanner.Err()
}

// Environment variables that re-seed the default context. Call LoadDotEnv
// first so a project .env file can provide them.
const (
	unitVar        = "CAD_UNIT"
	segmentsVar    = "CAD_SEGMENTS"
	interactionVar = "CAD_INTERACTION"
)

// FromEnviron returns the starting context for an evaluation: empty unless
// CAD_UNIT, CAD_SEGMENTS, or CAD_INTERACTION are set in the process
// environment, in which case those keys are pushed as overrides.
// Unparseable values are ignored.
func FromEnviron() Context {
	var c Context
	if v := os.Getenv(unitVar); v != "" {
		if u, ok := ParseUnit(v); ok {
			c = With(c, UnitKey, u)
		}
	}
	if v := os.Getenv(segmentsVar); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c = With(c, SegmentsKey, n)
		}
	}
	if v := os.Getenv(interactionVar); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c = With(c, InteractionKey, b)
		}
	}
	return c
}
