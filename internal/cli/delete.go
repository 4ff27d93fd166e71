// filepath: internal/cli/delete.go
package cli

import (
	"fmt"
	"io"

	"mediabridge/internal/audit"
	"mediabridge/internal/channel"
	"mediabridge/internal/shared"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <path>",
	Short: "Delete one file from the media index and the filesystem",
	Long: `Runs the deleteFile method locally and prints "true" if the index entry
or the file was removed, "false" otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDelete(cmd, args[0])
	},
}

func runDelete(cmd *cobra.Command, path string) error {
	repo, err := openIndex()
	if err != nil {
		return err
	}
	defer repo.Close()

	call := channel.MethodCall{
		Method:    channel.MethodDeleteFile,
		Arguments: map[string]interface{}{"path": path},
	}
	rec := &channel.Recorder{}
	ctx := audit.WithActor(cmd.Context(), "cli")
	newChannelHandler(repo).Handle(ctx, call, rec)

	return printReply(cmd.OutOrStdout(), rec.Reply)
}

// printReply writes a success value and turns an error reply into an error.
func printReply(w io.Writer, reply channel.Reply) error {
	switch reply.Kind {
	case channel.ReplySuccess:
		fmt.Fprintln(w, reply.Value)
		return nil
	case channel.ReplyError:
		if reply.Code == channel.CodeInvalidArgument {
			return fmt.Errorf("%w: %s: %s", shared.ErrInvalidArgument, reply.Code, reply.Message)
		}
		return fmt.Errorf("%s: %s", reply.Code, reply.Message)
	case channel.ReplyNotImplemented:
		return fmt.Errorf("method not implemented")
	default:
		return fmt.Errorf("no reply from channel")
	}
}
