package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mugiliam/fogcontroller/internal/fogmanager"
)

type IofogCmd struct {
	Add             IofogAddCmd             `cmd:"" help:"Add a new fog node."`
	Update          IofogUpdateCmd          `cmd:"" help:"Update a fog node."`
	Remove          IofogRemoveCmd          `cmd:"" help:"Delete a fog node."`
	List            IofogListCmd            `cmd:"" help:"List all fog nodes."`
	Info            IofogInfoCmd            `cmd:"" help:"Get fog node settings."`
	ProvisioningKey IofogProvisioningKeyCmd `cmd:"" name:"provisioning-key" help:"Issue a provisioning key for a fog node."`
	HelpCmd         helpCmd                 `cmd:"" name:"help" default:"1" help:"Show help."`
}

type FogFlags struct {
	Name             string  `short:"n" help:"Fog node name."`
	Location         string  `short:"l" help:"Fog node location."`
	Latitude         float64 `short:"t" help:"Fog node GPS latitude."`
	Longitude        float64 `short:"g" help:"Fog node GPS longitude."`
	Description      string  `short:"d" help:"Fog node description."`
	FogType          int     `name:"fog-type" short:"y" help:"Fog node type (0 unspecified, 1 x86, 2 ARM)."`
	NetworkInterface string  `name:"network-interface" help:"Agent network interface."`
	DockerURL        string  `name:"docker-url" help:"Agent docker url."`
	DiskLimit        float64 `name:"disk-limit" help:"Agent disk limit (GB)."`
	MemoryLimit      float64 `name:"memory-limit" help:"Agent memory limit (MB)."`
	CPULimit         float64 `name:"cpu-limit" help:"Agent CPU limit (%)."`
}

func (f *FogFlags) spec(isSet func(string) bool) *fogmanager.FogSpec {
	return &fogmanager.FogSpec{
		Name:        opt(isSet, "name", f.Name),
		Location:    opt(isSet, "location", f.Location),
		Latitude:    opt(isSet, "latitude", f.Latitude),
		Longitude:   opt(isSet, "longitude", f.Longitude),
		Description: opt(isSet, "description", f.Description),
		FogTypeID:   opt(isSet, "fog-type", f.FogType),
		AgentConfigSpec: fogmanager.AgentConfigSpec{
			NetworkInterface: opt(isSet, "network-interface", f.NetworkInterface),
			DockerURL:        opt(isSet, "docker-url", f.DockerURL),
			DiskLimit:        opt(isSet, "disk-limit", f.DiskLimit),
			MemoryLimit:      opt(isSet, "memory-limit", f.MemoryLimit),
			CPULimit:         opt(isSet, "cpu-limit", f.CPULimit),
		},
	}
}

type IofogAddCmd struct {
	FogFlags `embed:""`
	UserID   int64 `name:"user-id" short:"u" required:"" help:"User's id."`
}

func (c *IofogAddCmd) userID() int64 { return c.UserID }

func (c *IofogAddCmd) Run(rt *Runtime) error {
	fog, err := rt.Services.Fogs.CreateFog(rt.Ctx, rt.User, c.spec(rt.IsSet))
	if err != nil {
		return err
	}
	if err := rt.print(fog); err != nil {
		return err
	}
	done(rt, "Fog node has been created successfully.")
	return nil
}

type IofogUpdateCmd struct {
	NodeID   string `name:"node-id" short:"i" required:"" help:"Fog node ID."`
	FogFlags `embed:""`
}

func (c *IofogUpdateCmd) Run(rt *Runtime) error {
	id, err := nodeID(c.NodeID)
	if err != nil {
		return err
	}
	fog, err := rt.Services.Fogs.UpdateFog(rt.Ctx, id, c.spec(rt.IsSet))
	if err != nil {
		return err
	}
	if err := rt.print(fog); err != nil {
		return err
	}
	done(rt, "Fog node has been updated successfully.")
	return nil
}

type IofogRemoveCmd struct {
	NodeID string `name:"node-id" short:"i" required:"" help:"Fog node ID."`
}

func (c *IofogRemoveCmd) Run(rt *Runtime) error {
	id, err := nodeID(c.NodeID)
	if err != nil {
		return err
	}
	if err := rt.Services.Fogs.DeleteFog(rt.Ctx, id); err != nil {
		return err
	}
	done(rt, "Fog node has been removed successfully.")
	return nil
}

type IofogListCmd struct{}

func (c *IofogListCmd) Run(rt *Runtime) error {
	fogs, err := rt.Services.Fogs.ListFogs(rt.Ctx)
	if err != nil {
		return err
	}
	return rt.print(fogs)
}

type IofogInfoCmd struct {
	NodeID string `name:"node-id" short:"i" required:"" help:"Fog node ID."`
}

func (c *IofogInfoCmd) Run(rt *Runtime) error {
	id, err := nodeID(c.NodeID)
	if err != nil {
		return err
	}
	fog, err := rt.Services.Fogs.GetFog(rt.Ctx, id)
	if err != nil {
		return err
	}
	return rt.print(fog)
}

type IofogProvisioningKeyCmd struct {
	NodeID string `name:"node-id" short:"i" required:"" help:"Fog node ID."`
}

func (c *IofogProvisioningKeyCmd) Run(rt *Runtime) error {
	id, err := nodeID(c.NodeID)
	if err != nil {
		return err
	}
	key, err := rt.Services.Fogs.IssueProvisionKey(rt.Ctx, id)
	if err != nil {
		return err
	}
	return rt.print(key)
}

func nodeID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid node-id %q: %w", s, err)
	}
	return id, nil
}
