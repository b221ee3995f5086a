package modlog

import "strings"

// levelTable owns the default level and the per-module override mapping.
// It maintains the gate level: the most verbose level among the default and
// all overrides, i.e. the global threshold below which no module can emit.
// Callers must hold the Logger lock; levelTable itself is not synchronized.
type levelTable struct {
	def       Level
	overrides map[string]Level
	gate      Level
}

func newLevelTable(def Level) *levelTable {
	return &levelTable{
		def:       def,
		overrides: make(map[string]Level),
		gate:      def,
	}
}

// setDefault replaces the default level and returns the new gate level.
// Lowering (or keeping) the gate is O(1); raising it requires a full
// recompute over all overrides.
func (t *levelTable) setDefault(level Level) Level {
	t.def = level
	if level <= t.gate {
		t.gate = level
	} else {
		t.recompute()
	}
	return t.gate
}

// setOverride inserts or replaces the override for one module path and
// returns the new gate level. Equal levels never trigger a recompute.
func (t *levelTable) setOverride(module string, level Level) Level {
	t.overrides[module] = level
	switch {
	case level < t.gate:
		t.gate = level
	case level > t.gate:
		t.recompute()
	}
	return t.gate
}

// merge applies a mapping of overrides, last writer wins per path, and
// unconditionally recomputes the gate afterward.
func (t *levelTable) merge(overrides map[string]Level) Level {
	for module, level := range overrides {
		t.overrides[module] = level
	}
	t.recompute()
	return t.gate
}

// resolve returns the effective level for a module path. The lookup falls
// back from the full path to progressively shorter parent paths, splitting
// at the last hierarchical separator, and finally to the default level.
// It always succeeds; empty or malformed paths resolve to the default.
func (t *levelTable) resolve(module string) Level {
	for path := module; path != ""; {
		if level, ok := t.overrides[path]; ok {
			return level
		}
		idx := lastSeparator(path)
		if idx < 0 {
			break
		}
		path = path[:idx]
	}
	return t.def
}

// defaultLevel returns the current default level.
func (t *levelTable) defaultLevel() Level {
	return t.def
}

// gateLevel returns the current gate level.
func (t *levelTable) gateLevel() Level {
	return t.gate
}

func (t *levelTable) recompute() {
	gate := t.def
	for _, level := range t.overrides {
		if level < gate {
			gate = level
		}
	}
	t.gate = gate
}

// lastSeparator returns the index of the last hierarchical separator in a
// module path, recognizing both "::" and ".", or -1 if there is none.
func lastSeparator(path string) int {
	colon := strings.LastIndex(path, "::")
	dot := strings.LastIndex(path, ".")
	if dot > colon {
		return dot
	}
	return colon
}
