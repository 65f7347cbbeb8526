package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dtromb/automata/logutil"
)

var (
	// Set via AUTOMATA_DEBUG in the environment
	Debug bool
	// Set via AUTOMATA_DEBUG=2 in the environment
	Trace bool
	// Set via AUTOMATA_MAX_DFA_STATES in the environment
	MaxDFAStates int
	// Set via AUTOMATA_ALL_SYMBOLS in the environment
	AllSymbols bool
)

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"AUTOMATA_DEBUG":          {"AUTOMATA_DEBUG", Debug, "Show additional debug information (e.g. AUTOMATA_DEBUG=1, 2 for trace)"},
		"AUTOMATA_MAX_DFA_STATES": {"AUTOMATA_MAX_DFA_STATES", MaxDFAStates, "Maximum number of states subset construction may discover (default 0, unlimited)"},
		"AUTOMATA_ALL_SYMBOLS":    {"AUTOMATA_ALL_SYMBOLS", AllSymbols, "Print every symbol of the alphabet in transition tables"},
	}
}

func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// Clean quotes and spaces from the value
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

func init() {
	LoadConfig()
}

func LoadConfig() {
	Debug, Trace = false, false
	if debug := clean("AUTOMATA_DEBUG"); debug != "" {
		if lvl, err := strconv.Atoi(debug); err == nil {
			Debug = lvl > 0
			Trace = lvl > 1
		} else if d, err := strconv.ParseBool(debug); err == nil {
			Debug = d
		} else {
			Debug = true
		}
	}

	MaxDFAStates = 0
	if max := clean("AUTOMATA_MAX_DFA_STATES"); max != "" {
		m, err := strconv.Atoi(max)
		if err != nil || m < 0 {
			slog.Error("invalid setting, ignoring", "AUTOMATA_MAX_DFA_STATES", max, "error", err)
		} else {
			MaxDFAStates = m
		}
	}

	AllSymbols = false
	if all := clean("AUTOMATA_ALL_SYMBOLS"); all != "" {
		a, err := strconv.ParseBool(all)
		if err != nil {
			slog.Error("invalid setting, ignoring", "AUTOMATA_ALL_SYMBOLS", all, "error", err)
		} else {
			AllSymbols = a
		}
	}
}

// LogLevel maps the debug settings onto a slog level.
func LogLevel() slog.Level {
	switch {
	case Trace:
		return logutil.LevelTrace
	case Debug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
