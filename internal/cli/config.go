package cli

import (
	"github.com/mugiliam/fogcontroller/internal/config"
	"github.com/spf13/cast"
)

type ConfigCmd struct {
	Add     ConfigAddCmd    `cmd:"" help:"Store controller settings."`
	Remove  ConfigRemoveCmd `cmd:"" help:"Remove a stored setting; the file value applies again."`
	List    ConfigListCmd   `cmd:"" help:"List stored settings."`
	HelpCmd helpCmd         `cmd:"" name:"help" default:"1" help:"Show help."`
}

type ConfigAddCmd struct {
	Port             int    `short:"p" help:"Port the controller listens on."`
	SSLKey           string `name:"ssl-key" short:"k" help:"Path to the SSL key."`
	SSLCert          string `name:"ssl-cert" short:"c" help:"Path to the SSL certificate."`
	IntermediateCert string `name:"intermediate-cert" short:"i" help:"Path to the intermediate certificate chain."`
	ComsatHost       string `name:"comsat-host" short:"H" help:"Public host of the comsat service."`
}

func (c *ConfigAddCmd) Run(rt *Runtime) error {
	values := []struct {
		flag, key, value string
	}{
		{"port", config.KeyPort, cast.ToString(c.Port)},
		{"ssl-key", config.KeySSLKey, c.SSLKey},
		{"ssl-cert", config.KeySSLCert, c.SSLCert},
		{"intermediate-cert", config.KeyIntermediateCert, c.IntermediateCert},
		{"comsat-host", config.KeyComsatHost, c.ComsatHost},
	}
	for _, v := range values {
		if !rt.IsSet(v.flag) {
			continue
		}
		if err := rt.Services.Config.SetConfigValue(rt.Ctx, v.key, v.value); err != nil {
			return err
		}
	}
	done(rt, "Config has been updated successfully.")
	return nil
}

type ConfigRemoveCmd struct {
	Key string `arg:"" enum:"port,ssl_key,ssl_cert,intermediate_cert,comsat_host" help:"Setting to remove."`
}

func (c *ConfigRemoveCmd) Run(rt *Runtime) error {
	if err := rt.Services.Config.DeleteConfigValue(rt.Ctx, c.Key); err != nil {
		return err
	}
	done(rt, "Config has been removed successfully.")
	return nil
}

type ConfigListCmd struct{}

func (c *ConfigListCmd) Run(rt *Runtime) error {
	cs, err := rt.Services.Config.ListConfig(rt.Ctx)
	if err != nil {
		return err
	}
	return rt.print(cs)
}
