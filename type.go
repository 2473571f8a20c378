// File: toml-cfg/type.go
package tomlcfg

import "fmt"

// Int64 retrieves an integer field's resolved value. There is no conversion
// between kinds: asking for the wrong kind is an error, mirroring the
// exact-kind rule resolution applies to overrides.
func (rc *ResolvedConfig) Int64(name string) (int64, error) {
	v, err := rc.kindChecked(name, KindInteger)
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}

// String retrieves a string field's resolved value.
func (rc *ResolvedConfig) String(name string) (string, error) {
	v, err := rc.kindChecked(name, KindString)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Bool retrieves a boolean field's resolved value.
func (rc *ResolvedConfig) Bool(name string) (bool, error) {
	v, err := rc.kindChecked(name, KindBool)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func (rc *ResolvedConfig) kindChecked(name string, want Kind) (any, error) {
	field, ok := rc.decl.Field(name)
	if !ok {
		return nil, fmt.Errorf("field not declared: %s", name)
	}
	if field.Kind != want {
		return nil, fmt.Errorf("field %s is declared as %s, not %s", name, field.Kind, want)
	}
	return rc.values[name], nil
}
