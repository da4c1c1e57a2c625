package utils

import "encoding/json"

// Secret is a string that is never printed nor logged in clear.
type Secret string

func (s *Secret) Reveal() string {
	if s == nil {
		return ""
	}
	return string(*s)
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (Secret) String() string {
	return "<secret>"
}

func (Secret) GoString() string {
	return "<secret>"
}
