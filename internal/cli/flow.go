package cli

import "github.com/mugiliam/fogcontroller/internal/trackmanager"

type FlowCmd struct {
	Add     FlowAddCmd    `cmd:"" help:"Add a new flow."`
	Update  FlowUpdateCmd `cmd:"" help:"Update existing flow."`
	Remove  FlowRemoveCmd `cmd:"" help:"Delete a flow."`
	List    FlowListCmd   `cmd:"" help:"List all flows."`
	Info    FlowInfoCmd   `cmd:"" help:"Get flow settings."`
	HelpCmd helpCmd       `cmd:"" name:"help" default:"1" help:"Show help."`
}

type FlowFlags struct {
	Name        string `short:"n" help:"Flow name."`
	Description string `short:"d" help:"Flow description."`
	Activate    bool   `short:"a" help:"Activate flow."`
	Deactivate  bool   `short:"D" help:"Deactivate flow."`
}

func (f *FlowFlags) spec(isSet func(string) bool) (*trackmanager.TrackSpec, error) {
	activated, err := switchFlag("activate", f.Activate, "deactivate", f.Deactivate)
	if err != nil {
		return nil, err
	}
	return &trackmanager.TrackSpec{
		Name:        opt(isSet, "name", f.Name),
		Description: opt(isSet, "description", f.Description),
		IsActivated: activated,
	}, nil
}

type FlowAddCmd struct {
	FlowFlags `embed:""`
	UserID    int64 `name:"user-id" short:"u" required:"" help:"User's id."`
}

func (c *FlowAddCmd) userID() int64 { return c.UserID }

func (c *FlowAddCmd) Run(rt *Runtime) error {
	spec, err := c.spec(rt.IsSet)
	if err != nil {
		return err
	}
	t, err := rt.Services.Tracks.CreateTrack(rt.Ctx, rt.User, spec)
	if err != nil {
		return err
	}
	if err := rt.print(t); err != nil {
		return err
	}
	done(rt, "Flow has been created successfully.")
	return nil
}

type FlowUpdateCmd struct {
	FlowID    int64 `name:"flow-id" short:"i" required:"" help:"Flow ID."`
	FlowFlags `embed:""`
}

func (c *FlowUpdateCmd) Run(rt *Runtime) error {
	spec, err := c.spec(rt.IsSet)
	if err != nil {
		return err
	}
	t, err := rt.Services.Tracks.UpdateTrack(rt.Ctx, c.FlowID, spec)
	if err != nil {
		return err
	}
	if err := rt.print(t); err != nil {
		return err
	}
	done(rt, "Flow has been updated successfully.")
	return nil
}

type FlowRemoveCmd struct {
	FlowID int64 `name:"flow-id" short:"i" required:"" help:"Flow ID."`
}

func (c *FlowRemoveCmd) Run(rt *Runtime) error {
	if err := rt.Services.Tracks.DeleteTrack(rt.Ctx, c.FlowID); err != nil {
		return err
	}
	done(rt, "Flow has been removed successfully.")
	return nil
}

type FlowListCmd struct{}

func (c *FlowListCmd) Run(rt *Runtime) error {
	ts, err := rt.Services.Tracks.ListTracks(rt.Ctx)
	if err != nil {
		return err
	}
	return rt.print(ts)
}

type FlowInfoCmd struct {
	FlowID int64 `name:"flow-id" short:"i" required:"" help:"Flow ID."`
}

func (c *FlowInfoCmd) Run(rt *Runtime) error {
	t, err := rt.Services.Tracks.GetTrack(rt.Ctx, c.FlowID)
	if err != nil {
		return err
	}
	return rt.print(t)
}
