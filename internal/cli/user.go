package cli

import (
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/mugiliam/fogcontroller/internal/usermanager"
)

type UserCmd struct {
	Add           UserAddCmd           `cmd:"" help:"Add a new user."`
	Update        UserUpdateCmd        `cmd:"" help:"Update existing user."`
	Remove        UserRemoveCmd        `cmd:"" help:"Delete a user."`
	List          UserListCmd          `cmd:"" help:"List all users."`
	GenerateToken UserGenerateTokenCmd `cmd:"" name:"generate-token" help:"Issue a new access token for a user."`
	HelpCmd       helpCmd              `cmd:"" name:"help" default:"1" help:"Show help."`
}

type UserFlags struct {
	FirstName string `name:"first-name" short:"f" help:"User's first name."`
	LastName  string `name:"last-name" short:"l" help:"User's last name."`
	Email     string `short:"e" help:"User's email address."`
}

func (f *UserFlags) spec(isSet func(string) bool) *usermanager.UserSpec {
	return &usermanager.UserSpec{
		FirstName: opt(isSet, "first-name", f.FirstName),
		LastName:  opt(isSet, "last-name", f.LastName),
		Email:     opt(isSet, "email", f.Email),
	}
}

// userView is the only place the access token is shown.
type userView struct {
	*models.User
	AccessToken string `json:"accessToken,omitempty"`
}

type UserAddCmd struct {
	UserFlags `embed:""`
}

func (c *UserAddCmd) Run(rt *Runtime) error {
	u, err := rt.Services.Users.CreateUser(rt.Ctx, c.spec(rt.IsSet))
	if err != nil {
		return err
	}
	if err := rt.print(userView{User: u, AccessToken: u.AccessToken}); err != nil {
		return err
	}
	done(rt, "User has been created successfully.")
	return nil
}

type UserUpdateCmd struct {
	UserID    int64 `name:"user-id" short:"i" required:"" help:"User's id."`
	UserFlags `embed:""`
}

func (c *UserUpdateCmd) Run(rt *Runtime) error {
	u, err := rt.Services.Users.UpdateUser(rt.Ctx, c.UserID, c.spec(rt.IsSet))
	if err != nil {
		return err
	}
	if err := rt.print(u); err != nil {
		return err
	}
	done(rt, "User has been updated successfully.")
	return nil
}

type UserRemoveCmd struct {
	UserID int64 `name:"user-id" short:"i" required:"" help:"User's id."`
}

func (c *UserRemoveCmd) Run(rt *Runtime) error {
	if err := rt.Services.Users.DeleteUser(rt.Ctx, c.UserID); err != nil {
		return err
	}
	done(rt, "User has been removed successfully.")
	return nil
}

type UserListCmd struct{}

func (c *UserListCmd) Run(rt *Runtime) error {
	us, err := rt.Services.Users.ListUsers(rt.Ctx)
	if err != nil {
		return err
	}
	return rt.print(us)
}

type UserGenerateTokenCmd struct {
	UserID int64 `name:"user-id" short:"i" required:"" help:"User's id."`
}

func (c *UserGenerateTokenCmd) Run(rt *Runtime) error {
	u, err := rt.Services.Users.RegenerateToken(rt.Ctx, c.UserID)
	if err != nil {
		return err
	}
	return rt.print(userView{User: u, AccessToken: u.AccessToken})
}
