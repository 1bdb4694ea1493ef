package cli

import "github.com/mugiliam/fogcontroller/internal/registrymanager"

type RegistryCmd struct {
	Add     RegistryAddCmd    `cmd:"" help:"Add a new docker registry."`
	Update  RegistryUpdateCmd `cmd:"" help:"Update a docker registry."`
	Remove  RegistryRemoveCmd `cmd:"" help:"Delete a docker registry."`
	List    RegistryListCmd   `cmd:"" help:"List all docker registries."`
	HelpCmd helpCmd           `cmd:"" name:"help" default:"1" help:"Show help."`
}

type RegistryFlags struct {
	URI          string `short:"U" help:"Registry URI."`
	Public       bool   `short:"b" help:"Set registry as public."`
	Private      bool   `short:"r" help:"Set registry as private."`
	Username     string `short:"l" help:"Registry's user name."`
	Password     string `short:"p" help:"Password."`
	RequiresCert bool   `name:"requires-certificate" short:"c" help:"Requires certificate."`
	Certificate  string `help:"Certificate."`
	Email        string `short:"e" help:"Email address."`
}

func (f *RegistryFlags) spec(isSet func(string) bool) (*registrymanager.RegistrySpec, error) {
	isPublic, err := switchFlag("public", f.Public, "private", f.Private)
	if err != nil {
		return nil, err
	}
	return &registrymanager.RegistrySpec{
		URL:          opt(isSet, "uri", f.URI),
		IsPublic:     isPublic,
		Certificate:  opt(isSet, "certificate", f.Certificate),
		RequiresCert: opt(isSet, "requires-certificate", f.RequiresCert),
		Username:     opt(isSet, "username", f.Username),
		Password:     opt(isSet, "password", f.Password),
		UserEmail:    opt(isSet, "email", f.Email),
	}, nil
}

type RegistryAddCmd struct {
	RegistryFlags `embed:""`
	UserID        int64 `name:"user-id" short:"u" required:"" help:"User's id."`
}

func (c *RegistryAddCmd) userID() int64 { return c.UserID }

func (c *RegistryAddCmd) Run(rt *Runtime) error {
	spec, err := c.spec(rt.IsSet)
	if err != nil {
		return err
	}
	r, err := rt.Services.Registry.CreateRegistry(rt.Ctx, rt.User, spec)
	if err != nil {
		return err
	}
	if err := rt.print(r); err != nil {
		return err
	}
	done(rt, "Registry has been created successfully.")
	return nil
}

type RegistryUpdateCmd struct {
	ItemID        int64 `name:"item-id" short:"i" required:"" help:"Registry ID."`
	RegistryFlags `embed:""`
}

func (c *RegistryUpdateCmd) Run(rt *Runtime) error {
	spec, err := c.spec(rt.IsSet)
	if err != nil {
		return err
	}
	r, err := rt.Services.Registry.UpdateRegistry(rt.Ctx, c.ItemID, spec)
	if err != nil {
		return err
	}
	if err := rt.print(r); err != nil {
		return err
	}
	done(rt, "Registry has been updated successfully.")
	return nil
}

type RegistryRemoveCmd struct {
	ItemID int64 `name:"item-id" short:"i" required:"" help:"Registry ID."`
}

func (c *RegistryRemoveCmd) Run(rt *Runtime) error {
	if err := rt.Services.Registry.DeleteRegistry(rt.Ctx, c.ItemID); err != nil {
		return err
	}
	done(rt, "Registry has been removed successfully.")
	return nil
}

type RegistryListCmd struct{}

func (c *RegistryListCmd) Run(rt *Runtime) error {
	rs, err := rt.Services.Registry.ListRegistries(rt.Ctx)
	if err != nil {
		return err
	}
	return rt.print(rs)
}
