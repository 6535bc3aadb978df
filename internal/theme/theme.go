// Package theme resolves chart colour roles to paint values.
//
// Charts never carry colours, only roles. A Theme is handed to the renderer
// explicitly; with Tokens enabled the renderer emits CSS custom properties
// with the theme's hex as fallback, so the host page's light or dark tokens
// take over without the chart knowing about them.
package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownTheme is returned by ByName for names that have no palette.
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrInvalidColor is returned by Override for values that are not hex
	// colours.
	ErrInvalidColor = errors.New("invalid colour")
)

// Role is the semantic colour of a primitive.
type Role string

const (
	RoleNone    Role = "none"
	RoleDanger  Role = "danger"
	RoleWarning Role = "warning"
	RoleSuccess Role = "success"
	RoleAccent  Role = "accent"
	RoleNeutral Role = "neutral"
	RoleGrid    Role = "grid"
	RoleText    Role = "text"
	RoleMuted   Role = "muted"
	RoleSurface Role = "surface"
)

// Roles lists every paintable role in a stable order.
var Roles = []Role{
	RoleDanger,
	RoleWarning,
	RoleSuccess,
	RoleAccent,
	RoleNeutral,
	RoleGrid,
	RoleText,
	RoleMuted,
	RoleSurface,
}

// TokenPrefix is prepended to a role name to form its CSS custom property.
const TokenPrefix = "--chart-"

// Theme maps roles to colours.
type Theme struct {
	Name   string
	Colors map[Role]string
	// Tokens makes Paint emit var(--chart-<role>, <hex>) instead of the hex.
	Tokens bool
	// FontFamily is used for every text primitive.
	FontFamily string
}

const defaultFont = `ui-sans-serif, system-ui, -apple-system, "Segoe UI", Roboto, sans-serif`

// Light is the palette used on the light site theme.
func Light() Theme {
	return Theme{
		Name: "light",
		Colors: map[Role]string{
			RoleDanger:  "#E5484D",
			RoleWarning: "#F5A524",
			RoleSuccess: "#30A46C",
			RoleAccent:  "#4A90D9",
			RoleNeutral: "#6F6E77",
			RoleGrid:    "#E4E4E7",
			RoleText:    "#1F2328",
			RoleMuted:   "#6E7781",
			RoleSurface: "#FFFFFF",
		},
		Tokens:     true,
		FontFamily: defaultFont,
	}
}

// Dark is the palette used on the dark site theme.
func Dark() Theme {
	return Theme{
		Name: "dark",
		Colors: map[Role]string{
			RoleDanger:  "#FF6369",
			RoleWarning: "#FFCA16",
			RoleSuccess: "#3DD68C",
			RoleAccent:  "#6CB3FF",
			RoleNeutral: "#A1A1AA",
			RoleGrid:    "#2E2E35",
			RoleText:    "#E4E4E4",
			RoleMuted:   "#8B949E",
			RoleSurface: "#16213E",
		},
		Tokens:     true,
		FontFamily: defaultFont,
	}
}

// ByName returns the named built-in theme.
func ByName(name string) (Theme, error) {
	switch strings.ToLower(name) {
	case "", "light":
		return Light(), nil
	case "dark":
		return Dark(), nil
	default:
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
}

// Names returns the built-in theme names.
func Names() []string {
	return []string{"light", "dark"}
}

// Hex returns the literal colour for role. RoleNone and unknown roles
// return "none".
func (t Theme) Hex(role Role) string {
	if role == RoleNone || role == "" {
		return "none"
	}
	if c, ok := t.Colors[role]; ok {
		return c
	}
	return "none"
}

// Paint returns the value to use in a fill or stroke attribute.
func (t Theme) Paint(role Role) string {
	hex := t.Hex(role)
	if !t.Tokens || hex == "none" {
		return hex
	}
	return fmt.Sprintf("var(%s%s, %s)", TokenPrefix, role, hex)
}

// Literal returns a copy of t that paints plain hex colours.
func (t Theme) Literal() Theme {
	c := t.clone()
	c.Tokens = false
	return c
}

// Override returns a copy of t with the given role colours replaced.
// Keys that are not known roles, and values that are not #RGB, #RGBA,
// #RRGGBB or #RRGGBBAA, are reported as an error.
func (t Theme) Override(colors map[string]string) (Theme, error) {
	c := t.clone()
	keys := make([]string, 0, len(colors))
	for k := range colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		role := Role(strings.ToLower(k))
		if !known(role) {
			return Theme{}, fmt.Errorf("override %q: not a colour role", k)
		}
		v := strings.TrimSpace(colors[k])
		if !ValidHex(v) {
			return Theme{}, fmt.Errorf("override %q: %w %q, want #RGB or #RRGGBB", k, ErrInvalidColor, colors[k])
		}
		c.Colors[role] = v
	}
	return c, nil
}

// ValidHex reports whether s is a #RGB, #RGBA, #RRGGBB or #RRGGBBAA colour.
func ValidHex(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	digits := s[1:]
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range digits {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// CSS renders the theme as a block of custom properties under selector.
func (t Theme) CSS(selector string) string {
	var sb strings.Builder
	sb.WriteString(selector)
	sb.WriteString(" {\n")
	for _, r := range Roles {
		fmt.Fprintf(&sb, "    %s%s: %s;\n", TokenPrefix, r, t.Hex(r))
	}
	sb.WriteString("}\n")
	return sb.String()
}

func (t Theme) clone() Theme {
	c := t
	c.Colors = make(map[Role]string, len(t.Colors))
	for k, v := range t.Colors {
		c.Colors[k] = v
	}
	return c
}

func known(r Role) bool {
	for _, k := range Roles {
		if k == r {
			return true
		}
	}
	return false
}
