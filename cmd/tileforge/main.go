// Command tileforge drives a map build from a resolved template to an
// exported map file (spec §6's CLI surface: "build <template> <output>").
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"tileforge/element"
	"tileforge/generators"
	"tileforge/mapbuild"
)

// registeredElements maps a template's element names to constructors for the
// concrete Element implementations this binary ships with. A deployment
// wiring in custom elements would extend this table.
var registeredElements = map[string]func() element.Element{
	"terrain": func() element.Element { return generators.NewTerrainElement(0) },
	"rooms":   func() element.Element { return generators.NewRoomsElement(1) },
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "build":
		if len(os.Args) != 4 {
			usage()
			os.Exit(2)
		}
		if err := runBuild(os.Args[2], os.Args[3]); err != nil {
			log.Printf("tileforge: build aborted: %v", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: tileforge build <template> <output>")
}

func runBuild(templatePath, outputPath string) error {
	tpl, err := mapbuild.LoadTemplateFromFile(templatePath)
	if err != nil {
		return err
	}

	builder := mapbuild.New(tpl.MapID, tpl.Width, tpl.Height, tpl.Layers, tpl.Seed, log.Default())
	for _, name := range tpl.Elements {
		factory, ok := registeredElements[name]
		if !ok {
			return fmt.Errorf("tileforge: no element registered under %q", name)
		}
		builder.AddElement(factory())
	}
	if err := builder.Err(); err != nil {
		return err
	}

	result, err := builder.Build(context.Background())
	if err != nil {
		return err
	}

	alloc := mapbuild.BuildAllocation(result.Registries...)
	exported := mapbuild.Export(result.Cache, result.AutoTileIndices, alloc, tpl.TileWidth, tpl.TileHeight)

	if err := mapbuild.WriteFile(exported, outputPath); err != nil {
		return err
	}

	log.Printf("tileforge: wrote %q", outputPath)
	return nil
}
