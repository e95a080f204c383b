package env

import (
	"os"
	"strconv"
)

func Debug() bool {
	return os.Getenv("DEBUG") != ""
}

// ChaosN is how many random layouts the chaos tests run through, from GRIDCANVAS_CHAOS_N.
func ChaosN(def int) int {
	return intEnv("GRIDCANVAS_CHAOS_N", def)
}

// ChaosSeed pins the chaos generator seed, from GRIDCANVAS_CHAOS_SEED.
func ChaosSeed() (int64, bool) {
	if s := os.Getenv("GRIDCANVAS_CHAOS_SEED"); s != "" {
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return i, true
		}
	}
	return 0, false
}

func intEnv(k string, def int) int {
	if s := os.Getenv(k); s != "" {
		i, err := strconv.Atoi(s)
		if err == nil {
			return i
		}
	}
	return def
}
