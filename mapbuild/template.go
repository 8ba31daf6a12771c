package mapbuild

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Template is the fully-resolved map template the core accepts (spec §6:
// "The core accepts a fully-resolved map template; config parsing is an
// external concern"). It names the element composition and carries any
// per-element override JSON as raw, unparsed data. Modeled after the
// teacher's DungeonThemeDefinition JSON loader.
type Template struct {
	MapID  string `json:"map_id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Layers int    `json:"layers"`
	Seed   *int64 `json:"seed,omitempty"`

	TileWidth  int `json:"tilewidth"`
	TileHeight int `json:"tileheight"`

	// Elements is the ordered list of element names to run; the CLI looks
	// each name up in its registeredElements table and fails on an unknown one.
	Elements []string `json:"elements"`

	// Overrides maps an element name to a raw JSON object of resource
	// overrides for that element. It is kept as raw JSON only: nothing in
	// this module decodes it into a resources.Registry or passes it to
	// Builder.WithOverride, so it does not affect a build.
	Overrides map[string]json.RawMessage `json:"overrides,omitempty"`
}

// LoadTemplateFromFile reads and parses a Template from a JSON file,
// defaulting tile dimensions and layer count the way the teacher's
// DungeonThemeManager defaults a theme's numeric fields.
func LoadTemplateFromFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "mapbuild: read template %q", path)
	}

	var tpl Template
	if err := json.Unmarshal(data, &tpl); err != nil {
		return nil, errors.Wrapf(err, "mapbuild: parse template %q", path)
	}

	if tpl.MapID == "" {
		return nil, errors.Errorf("mapbuild: template %q is missing map_id", path)
	}
	if tpl.TileWidth == 0 {
		tpl.TileWidth = 32
	}
	if tpl.TileHeight == 0 {
		tpl.TileHeight = 32
	}
	if tpl.Layers == 0 {
		tpl.Layers = 10
	}
	if tpl.Width <= 0 || tpl.Height <= 0 {
		return nil, fmt.Errorf("mapbuild: template %q has non-positive dimensions %dx%d", path, tpl.Width, tpl.Height)
	}
	return &tpl, nil
}
