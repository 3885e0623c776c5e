// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// ntsyncd serves NT-style synchronization objects over HTTP.
package main

import (
	"context"
	"net/http"
	"os"

	"github.com/go-kit/kit/metrics/provider"
	"github.com/mitchellh/mapstructure"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/ntsync/concurrent"
	"github.com/xmidt-org/ntsync/logging"
	"github.com/xmidt-org/ntsync/object"
	"github.com/xmidt-org/ntsync/server"
	"github.com/xmidt-org/ntsync/session"
	"github.com/xmidt-org/ntsync/session/sessionhttp"
	"github.com/xmidt-org/ntsync/xmetrics"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const (
	applicationName = "ntsyncd"

	// APIKey is the viper subtree holding the HTTP API options
	APIKey = "api"
)

func newViper(arguments []string) func() (*viper.Viper, error) {
	return func() (*viper.Viper, error) {
		v := server.NewViper(applicationName)
		err := server.Configure(v, pflag.NewFlagSet(applicationName, pflag.ContinueOnError), arguments)
		return v, err
	}
}

func newRegistry(v *viper.Viper) (xmetrics.Registry, error) {
	o, err := xmetrics.NewOptions(v)
	if err != nil {
		return nil, err
	}

	return xmetrics.NewRegistry(o, server.Metrics, session.Metrics, object.Metrics, sessionhttp.Metrics)
}

func newManager(lc fx.Lifecycle, logger *zap.Logger, o *session.Options) session.Manager {
	m := session.NewManager(o)

	// hooks stop in reverse, so sessions are closed before the reclaimer drains the domain
	lc.Append(concurrent.Hook(session.NewReclaimer(m.Pool().Domain(), o)))
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("closed sessions", zap.Int("count", m.CloseAll()))
			return nil
		},
	})

	return m
}

func newAPIHandler(lc fx.Lifecycle, m session.Manager, logger *zap.Logger, p provider.Provider, v *viper.Viper) (http.Handler, error) {
	var o sessionhttp.Options
	if err := v.UnmarshalKey(APIKey, &o, viper.DecodeHook(mapstructure.StringToTimeDurationHookFunc())); err != nil {
		return nil, err
	}

	o.Manager = m
	o.Logger = logger
	o.Provider = p
	h, err := sessionhttp.NewHandler(o)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return h.Close()
		},
	})

	return h, nil
}

type serversIn struct {
	fx.In

	Lifecycle fx.Lifecycle
	Logger    *zap.Logger
	Registry  xmetrics.Registry
	Options   *server.Options
	API       http.Handler `name:"api"`
}

func runServers(in serversIn) {
	primary := in.Options.Primary
	primary.Logger = in.Logger
	in.Lifecycle.Append(
		server.New(server.PrimaryName, primary, in.API, server.NewMeasures(in.Registry, server.PrimaryName)).Hook(),
	)

	metrics := in.Options.Metrics
	metrics.Logger = in.Logger
	in.Lifecycle.Append(
		server.New(
			server.MetricsName,
			metrics,
			promhttp.HandlerFor(in.Registry, promhttp.HandlerOpts{
				ErrorLog: logging.NewErrorLog(server.MetricsName, in.Logger),
			}),
			server.NewMeasures(in.Registry, server.MetricsName),
		).Hook(),
	)
}

func options(arguments []string) fx.Option {
	return fx.Options(
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l}
		}),
		fx.Provide(
			newViper(arguments),
			logging.NewFromViper,
			newRegistry,
			func(r xmetrics.Registry) provider.Provider { return r },
			session.NewOptions,
			server.NewOptions,
			newManager,
			fx.Annotated{
				Name:   "api",
				Target: newAPIHandler,
			},
		),
		fx.Invoke(runServers),
	)
}

func main() {
	fx.New(options(os.Args[1:])).Run()
}
