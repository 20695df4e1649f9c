package app

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/devworkspace-io/workspace-secrets/pkg/api"
	"github.com/devworkspace-io/workspace-secrets/pkg/events"
	"github.com/devworkspace-io/workspace-secrets/pkg/k8s"
	"github.com/devworkspace-io/workspace-secrets/pkg/namespaces"
	"github.com/devworkspace-io/workspace-secrets/pkg/secrets"
	"github.com/devworkspace-io/workspace-secrets/pkg/users"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the workspace-secrets API server",
		Long: `Start the REST API server that saves git credential secrets, provisions
workspace namespaces with user information secrets, and reacts to
user-persisted events.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("address", "127.0.0.1:8080", "Address for the API server to listen on")
	cmd.Flags().String("kubeconfig", "", "Path to a kubeconfig file (defaults to in-cluster, then standard loading rules)")
	cmd.Flags().String("namespace-template", namespaces.DefaultNameTemplate,
		"Workspace namespace name template, supports <username> and <userid> placeholders")
	cmd.Flags().String("users-file", "", "Path to a YAML user directory file")

	for _, flag := range []string{"address", "kubeconfig", "namespace-template", "users-file"} {
		if err := viper.BindPFlag(flag, cmd.Flags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind %s flag: %v", flag, err))
		}
	}

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	clientset, err := k8s.NewClient(viper.GetString("kubeconfig"))
	if err != nil {
		return err
	}

	directory := users.NewDirectory()
	if usersFile := viper.GetString("users-file"); usersFile != "" {
		directory, err = users.LoadDirectory(usersFile)
		if err != nil {
			return err
		}
	}

	resolver := namespaces.NewKubeResolver(clientset, viper.GetString("namespace-template"))
	store := k8s.NewSecretStore(clientset)

	manager := secrets.NewManager(resolver, store)
	provisioner := namespaces.NewProvisioner(resolver, store, directory, directory)

	bus := events.NewBus()
	bus.SubscribeUserPersisted(provisioner.HandleUserPersisted)

	return api.Serve(ctx, viper.GetString("address"), manager, provisioner, directory, bus)
}
