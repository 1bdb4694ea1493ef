package cli

import (
	"github.com/mugiliam/fogcontroller/internal/catalogmanager"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

const catalogFileSchema = `JSON File Schema:
  name: string
  description: string
  category: string
  publisher: string
  diskRequired: number
  ramRequired: number
  picture: string
  isPublic: boolean
  registryId: number
  configExample: string
  images: array of objects
    containerImage: string
    fogTypeId: number
  inputType: object
    infoType: string
    infoFormat: string
  outputType: object
    infoType: string
    infoFormat: string`

type CatalogCmd struct {
	Add     CatalogAddCmd    `cmd:"" help:"Add a new catalog item."`
	Update  CatalogUpdateCmd `cmd:"" help:"Update existing catalog item."`
	Remove  CatalogRemoveCmd `cmd:"" help:"Delete a catalog item."`
	List    CatalogListCmd   `cmd:"" help:"List all catalog items."`
	Info    CatalogInfoCmd   `cmd:"" help:"Get catalog item settings."`
	HelpCmd helpCmd          `cmd:"" name:"help" default:"1" help:"Show help."`
}

func (c *CatalogCmd) Help() string {
	return catalogFileSchema
}

// CatalogItemFlags are the item settings accepted by add and update.
type CatalogItemFlags struct {
	File          string `short:"f" help:"Catalog item settings JSON (or YAML) file."`
	Name          string `short:"n" help:"Catalog item name."`
	Description   string `short:"d" help:"Catalog item description."`
	Category      string `short:"c" help:"Catalog item category."`
	X86Image      string `name:"x86-image" short:"x" help:"x86 docker image name."`
	ArmImage      string `name:"arm-image" short:"a" help:"ARM docker image name."`
	Publisher     string `short:"p" help:"Catalog item publisher name."`
	DiskRequired  int64  `name:"disk-required" short:"s" help:"Amount of disk required to run the microservice (MB)."`
	RAMRequired   int64  `name:"ram-required" short:"r" help:"Amount of RAM required to run the microservice (MB)."`
	Picture       string `short:"t" help:"Catalog item picture."`
	Public        bool   `short:"P" help:"Public catalog item."`
	Private       bool   `short:"V" help:"Private catalog item."`
	RegistryID    int64  `name:"registry-id" short:"g" help:"Catalog item docker registry ID."`
	InputType     string `name:"input-type" short:"I" help:"Catalog item input type."`
	InputFormat   string `name:"input-format" short:"F" help:"Catalog item input format."`
	OutputType    string `name:"output-type" short:"O" help:"Catalog item output type."`
	OutputFormat  string `name:"output-format" short:"T" help:"Catalog item output format."`
	ConfigExample string `name:"config-example" short:"X" help:"Catalog item config example."`
}

// BuildCatalogItemSpec maps the flags given on the command line onto a
// catalog item payload. Flags that were not given leave their field unset.
func BuildCatalogItemSpec(f *CatalogItemFlags, isSet func(flag string) bool) (*catalogmanager.CatalogItemSpec, error) {
	str := func(flag, v string) *string { return opt(isSet, flag, v) }
	num := func(flag string, v int64) *int64 { return opt(isSet, flag, v) }

	isPublic, err := switchFlag("public", f.Public && isSet("public"), "private", f.Private && isSet("private"))
	if err != nil {
		return nil, err
	}
	spec := &catalogmanager.CatalogItemSpec{
		Name:          str("name", f.Name),
		Description:   str("description", f.Description),
		Category:      str("category", f.Category),
		ConfigExample: str("config-example", f.ConfigExample),
		Publisher:     str("publisher", f.Publisher),
		DiskRequired:  num("disk-required", f.DiskRequired),
		RAMRequired:   num("ram-required", f.RAMRequired),
		Picture:       str("picture", f.Picture),
		IsPublic:      isPublic,
		RegistryID:    num("registry-id", f.RegistryID),
	}
	if isSet("x86-image") || isSet("arm-image") {
		spec.Images = []catalogmanager.ImageSpec{
			{ContainerImage: str("x86-image", f.X86Image), FogTypeID: 1},
			{ContainerImage: str("arm-image", f.ArmImage), FogTypeID: 2},
		}
	}
	if isSet("input-type") {
		spec.InputType = &catalogmanager.InfoTypeSpec{
			InfoType:   lo.ToPtr(f.InputType),
			InfoFormat: str("input-format", f.InputFormat),
		}
	}
	if isSet("output-type") {
		spec.OutputType = &catalogmanager.InfoTypeSpec{
			InfoType:   lo.ToPtr(f.OutputType),
			InfoFormat: str("output-format", f.OutputFormat),
		}
	}
	return spec, nil
}

func (f *CatalogItemFlags) spec(rt *Runtime) (*catalogmanager.CatalogItemSpec, error) {
	if f.File == "" {
		return BuildCatalogItemSpec(f, rt.IsSet)
	}
	data, err := afero.ReadFile(rt.Fs, f.File)
	if err != nil {
		return nil, err
	}
	spec, aerr := catalogmanager.ParseCatalogItemSpec(data)
	if aerr != nil {
		return nil, aerr
	}
	return spec, nil
}

type CatalogAddCmd struct {
	CatalogItemFlags `embed:""`
	UserID           int64 `name:"user-id" short:"u" required:"" help:"User's id."`
}

func (c *CatalogAddCmd) userID() int64 { return c.UserID }

func (c *CatalogAddCmd) Run(rt *Runtime) error {
	spec, err := c.spec(rt)
	if err != nil {
		return err
	}
	item, err := rt.Services.Catalog.CreateCatalogItem(rt.Ctx, rt.User, spec)
	if err != nil {
		return err
	}
	if err := rt.print(item); err != nil {
		return err
	}
	done(rt, "Catalog item has been created successfully.")
	return nil
}

type CatalogUpdateCmd struct {
	ItemID           int64 `name:"item-id" short:"i" required:"" help:"Catalog item ID."`
	CatalogItemFlags `embed:""`
}

func (c *CatalogUpdateCmd) Run(rt *Runtime) error {
	spec, err := c.spec(rt)
	if err != nil {
		return err
	}
	item, err := rt.Services.Catalog.UpdateCatalogItem(rt.Ctx, c.ItemID, spec)
	if err != nil {
		return err
	}
	if err := rt.print(item); err != nil {
		return err
	}
	done(rt, "Catalog item has been updated successfully.")
	return nil
}

type CatalogRemoveCmd struct {
	ItemID int64 `name:"item-id" short:"i" required:"" help:"Catalog item ID."`
}

func (c *CatalogRemoveCmd) Run(rt *Runtime) error {
	if err := rt.Services.Catalog.DeleteCatalogItem(rt.Ctx, c.ItemID); err != nil {
		return err
	}
	done(rt, "Catalog item has been removed successfully.")
	return nil
}

type CatalogListCmd struct{}

func (c *CatalogListCmd) Run(rt *Runtime) error {
	items, err := rt.Services.Catalog.ListCatalogItems(rt.Ctx)
	if err != nil {
		return err
	}
	return rt.print(items)
}

type CatalogInfoCmd struct {
	ItemID int64 `name:"item-id" short:"i" required:"" help:"Catalog item ID."`
}

func (c *CatalogInfoCmd) Run(rt *Runtime) error {
	item, err := rt.Services.Catalog.GetCatalogItem(rt.Ctx, c.ItemID)
	if err != nil {
		return err
	}
	return rt.print(item)
}
