package kernel

import "strings"

type Email string

func (e Email) String() string { return string(e) }
func (e Email) IsEmpty() bool  { return string(e) == "" }

// IsValid does a minimal shape check; real validation happens at signup upstream.
func (e Email) IsValid() bool {
	s := string(e)
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && !strings.Contains(s[at+1:], "@")
}

type Phone string

func (p Phone) String() string { return string(p) }
func (p Phone) IsEmpty() bool  { return string(p) == "" }

type FullName string

func (f FullName) String() string { return string(f) }
func (f FullName) IsEmpty() bool  { return strings.TrimSpace(string(f)) == "" }
