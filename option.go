package cfgmap

func joinPath(section, option string) string {
	return section + Separator + option
}

// defaultPath returns the path of option inside the default section.
func (m *Map) defaultPath(option string) string {
	if m.DefaultKey() == "" {
		return option
	}

	return joinPath(m.defaultKey, option)
}

// GetOption returns section/option, falling back to option inside the
// default section when the section does not define it. With no default key
// the fallback is option at the map root. option may itself be a path.
func (m *Map) GetOption(section, option string) *Value {
	if option == "" {
		return nil
	}

	if v := m.Get(joinPath(section, option)); v != nil {
		return v
	}

	return m.Get(m.defaultPath(option))
}

// UpdateOption replaces the effective value of section/option and returns the
// previous one. Lookup falls back to the default section exactly like
// GetOption, but the write always lands in section: when only the default
// section defines the option, an override is added to section and the default
// is left untouched.
//
// UpdateOption never creates options that exist nowhere. It reports false and
// changes nothing when neither section nor the default section define option,
// or when the override cannot be placed because section does not exist.
func (m *Map) UpdateOption(section, option string, v Value) (Value, bool) {
	if option == "" || v.kind == KindInvalid {
		return Value{}, false
	}

	concrete := joinPath(section, option)

	if current := m.Get(concrete); current != nil {
		old := *current
		*current = v

		return old, true
	}

	fallback := m.Get(m.defaultPath(option))
	if fallback == nil {
		return Value{}, false
	}

	old := fallback.Clone()

	if !m.Add(concrete, v) {
		return Value{}, false
	}

	return old, true
}
