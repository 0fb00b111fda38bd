package cli

import (
	"github.com/spf13/cobra"

	"hyperliquid-journal/internal/config"
	"hyperliquid-journal/internal/hyperliquid"
)

func newWalletCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Wallet connection management",
		Long: `Connect a Hyperliquid wallet address for read-only trade fetching.

Only the public address is stored; no private keys are ever handled.`,
	}

	cmd.AddCommand(newWalletConnectCmd(app))
	cmd.AddCommand(newWalletDisconnectCmd(app))
	cmd.AddCommand(newWalletShowCmd(app))

	return cmd
}

func newWalletConnectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "connect <address>",
		Short: "Connect a wallet address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			if err := hyperliquid.ValidateAddress(args[0]); err != nil {
				output.Error("Invalid wallet address format. Please check your address.")
				return err
			}
			addr := hyperliquid.NormalizeAddress(args[0])

			if err := config.SaveWallet(app.ConfigDir, addr); err != nil {
				return err
			}
			app.Config.Wallet.Address = addr
			app.Logger.Info().Str("wallet", addr).Msg("Wallet connected")

			if output.IsJSON() {
				return output.JSON(map[string]string{"wallet_address": addr})
			}
			output.Success("✓ Connected wallet %s", addr)
			output.Dim("Run 'hlj fetch' to pull your recent trades.")
			return nil
		},
	}
}

func newWalletDisconnectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Disconnect the current wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			if !app.Config.Connected() {
				output.Warning("No wallet connected.")
				return nil
			}

			prev := app.Config.Wallet.Address
			if err := config.SaveWallet(app.ConfigDir, ""); err != nil {
				return err
			}
			app.Config.Wallet.Address = ""
			app.Logger.Info().Str("wallet", prev).Msg("Wallet disconnected")

			if output.IsJSON() {
				return output.JSON(map[string]bool{"disconnected": true})
			}
			output.Success("✓ Disconnected wallet %s", prev)
			return nil
		},
	}
}

func newWalletShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the connected wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"connected":      app.Config.Connected(),
					"wallet_address": app.Config.Wallet.Address,
				})
			}
			if !app.Config.Connected() {
				output.Println("No wallet connected.")
				output.Dim("Connect with: hlj wallet connect <address>")
				return nil
			}
			output.Printf("Connected wallet: %s\n", output.Cyan(app.Config.Wallet.Address))
			return nil
		},
	}
}
