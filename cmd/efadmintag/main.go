package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Adirelle/efadmintag/pkg/admintag"
	"github.com/Adirelle/efadmintag/pkg/discord"
	"github.com/Adirelle/efadmintag/pkg/minecraft"
	"github.com/Adirelle/efadmintag/pkg/permissions"
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
)

var cliLogHandler = cli.New(os.Stderr)

func init() {
	log.SetHandler(cliLogHandler)
	log.SetLevel(log.InfoLevel)
}

func main() {
	conf, err := LoadConfig(FindConfigFile(ConfigSearchPath()))
	if err != nil {
		log.WithError(err).Fatal("could not load configuration")
	}
	logService := conf.Logging.Apply()

	messages := admintag.DefaultMessages()
	if conf.AdminTag.MessagesFile != "" {
		if messages, err = admintag.LoadMessages(conf.AdminTag.MessagesFile); err != nil {
			log.WithError(err).WithField("path", conf.AdminTag.MessagesFile).Fatal("could not load messages")
		}
	}

	store, err := permissions.OpenBoltStore(conf.Permissions.Database)
	if err != nil {
		log.WithError(err).Fatal("could not open permissions")
	}
	defer store.Close()

	root := MakeRootSupervisor(conf.Minecraft.StopDelay() + 5*time.Second)
	if logService != nil {
		root.Add(logService)
	}

	server := minecraft.NewServer(*conf.Minecraft, root.Dispatcher)
	root.Add(server)

	root.AddHandler(minecraft.NewPlayerTracker(server, root.Dispatcher))
	root.AddHandler(permissions.NewManager(store))
	root.AddHandler(admintag.NewToggler(
		*conf.AdminTag,
		store,
		admintag.WithMessages(messages),
		admintag.WithDispatcher(root.Dispatcher),
	))

	if conf.Discord != nil {
		root.Add(discord.NewNotifier(*conf.Discord))
	}

	root.Add(NewConsole(os.Stdin, os.Stdout, server, root.Dispatcher))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = root.Serve(ctx)
	if err != nil && err != context.Canceled {
		log.WithError(err).Error("exit")
	}
	log.Info("shutdown")
}
