// Command d4log is the operator CLI for the combat logger's memory core:
// locate the game client, peek and poke its memory, and pull armory stats.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"

	"d4log/armory"
	"d4log/hexdump"
	"d4log/process"
	"d4log/process/memory_map"
	"d4log/process_linux"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "d4log",
	Short:         "Diablo IV combat logger utilities",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var pidCmd = &cobra.Command{
	Use:   "pid <name>",
	Short: "Resolve a process name to its PID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pid, err := process_linux.FindProcess(args[0])
		if err != nil {
			return err
		}
		fmt.Println(int(pid))
		return nil
	},
}

var noColor bool

var readCmd = &cobra.Command{
	Use:   "read <pid> <addr> <len>",
	Short: "Read a byte range from a process and hexdump it",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		mem, addr, err := openTarget(args[0], args[1])
		if err != nil {
			return err
		}
		size, err := strconv.ParseUint(args[2], 0, 32)
		if err != nil {
			return fmt.Errorf("invalid length %q: %w", args[2], err)
		}

		data, err := mem.ReadBytes(addr, process.ProcessMemorySize(size))
		if err != nil {
			// A partial read still has bytes worth showing
			var partial *process.ReadPartialError
			if !errors.As(err, &partial) {
				return err
			}
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			data = partial.Data
		}

		opts := hexdump.DefaultOptions()
		opts.Base = uint64(addr)
		opts.Color = !noColor
		fmt.Print(hexdump.Dump(data, opts))
		return nil
	},
}

var writeCmd = &cobra.Command{
	Use:   "write <pid> <addr> <hexbytes>",
	Short: "Write hex-encoded bytes into a process",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		mem, addr, err := openTarget(args[0], args[1])
		if err != nil {
			return err
		}
		data, err := hex.DecodeString(args[2])
		if err != nil {
			return fmt.Errorf("invalid hex data: %w", err)
		}

		if err := mem.WriteBytes(addr, data); err != nil {
			return err
		}
		fmt.Printf("wrote %d bytes at %s\n", len(data), addr)
		return nil
	},
}

var readstrCmd = &cobra.Command{
	Use:   "readstr <pid> <start> <end>",
	Short: "Read a null-terminated string from an address range",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		mem, start, err := openTarget(args[0], args[1])
		if err != nil {
			return err
		}
		end, err := parseAddr(args[2])
		if err != nil {
			return err
		}

		s, err := mem.ReadString(process.AddressRange{Start: start, End: end})
		if err != nil {
			var partial *process.ReadPartialError
			if !errors.As(err, &partial) {
				return err
			}
			fmt.Fprintf(os.Stderr, "warning: no terminator before end of range\n")
			s = string(partial.Data)
		}
		fmt.Println(s)
		return nil
	},
}

var mapsCmd = &cobra.Command{
	Use:   "maps <pid>",
	Short: "List the mapped memory regions of a process",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pid, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid pid %q: %w", args[0], err)
		}
		regions, err := memory_map.Read(pid)
		if err != nil {
			return err
		}
		for _, r := range regions {
			fmt.Println(r)
		}
		return nil
	},
}

var (
	armoryConfig  string
	armoryAccount uint64
)

var armoryCmd = &cobra.Command{
	Use:   "armory",
	Short: "Fetch account statistics from the D4Armory API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := armory.NewClient()
		accountID := armoryAccount
		if armoryConfig != "" {
			config, err := armory.LoadConfig(armoryConfig)
			if err != nil {
				return err
			}
			client = config.NewClient()
			if accountID == 0 {
				accountID = config.AccountID
			}
		}
		if accountID == 0 {
			return fmt.Errorf("no account id given (use --account or a config file)")
		}

		account, err := client.Account(accountID)
		if err != nil {
			return err
		}

		fmt.Printf("account %d  clan [%s]  dungeons %d  pvp kills %d\n",
			account.AccountID, account.ClanTag, account.DungeonsCompleted, account.PlayersKilled)
		for _, c := range account.Characters {
			fmt.Printf("  %-16s %-12s lvl %-3d hardcore=%-5v seasonal=%-5v updated %s\n",
				c.Name, c.Class, c.Level, c.Hardcore, c.Seasonal, c.LastUpdate.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

// openTarget opens pidArg for memory access and parses addrArg.
func openTarget(pidArg, addrArg string) (*process_linux.Memory, process.ProcessMemoryAddress, error) {
	pid, err := strconv.Atoi(pidArg)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid pid %q: %w", pidArg, err)
	}
	addr, err := parseAddr(addrArg)
	if err != nil {
		return nil, 0, err
	}
	mem, err := process_linux.Open(process.ProcessID(pid))
	if err != nil {
		return nil, 0, err
	}
	return mem, addr, nil
}

func parseAddr(s string) (process.ProcessMemoryAddress, error) {
	addr, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return process.ProcessMemoryAddress(addr), nil
}

func main() {
	readCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	armoryCmd.Flags().StringVar(&armoryConfig, "config", "", "path to armory config file")
	armoryCmd.Flags().Uint64Var(&armoryAccount, "account", 0, "armory account id")

	rootCmd.AddCommand(pidCmd, readCmd, writeCmd, readstrCmd, mapsCmd, armoryCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
