package cmd

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"filestore/core/config"
	"filestore/core/storage"

	"github.com/spf13/cobra"
)

var (
	flagEndpoint  string
	flagAccessKey string
	flagSecretKey string
	flagBucket    string
	flagSecure    bool
)

// resolveStorageConfig merges explicit flags over the ambient configuration.
// A flag that was not set on the command line leaves the ambient value alone,
// which is what lets --secure=false actually mean "insecure".
func resolveStorageConfig(cmd *cobra.Command) (storage.Config, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return storage.Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	sc := cfg.Storage
	if flagEndpoint != "" {
		sc.Endpoint = flagEndpoint
	}
	if flagAccessKey != "" {
		sc.AccessKey = flagAccessKey
	}
	if flagSecretKey != "" {
		sc.SecretKey = flagSecretKey
	}
	if flagBucket != "" {
		sc.Bucket = flagBucket
	}
	if cmd.Flags().Changed("secure") {
		sc.Secure = flagSecure
	}
	return sc, nil
}

func newBackend(cmd *cobra.Command) (*storage.Backend, error) {
	sc, err := resolveStorageConfig(cmd)
	if err != nil {
		return nil, err
	}
	return storage.New(sc)
}

var putCmd = &cobra.Command{
	Use:   "put <file> [name]",
	Short: "Upload a file to the store",
	Long: `Uploads a local file under the given object name. When the name is
omitted the file's base name is used. An existing object with the same name
is overwritten. The content type is inferred from the file extension.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := newBackend(cmd)
		if err != nil {
			return err
		}

		path := args[0]
		name := filepath.Base(path)
		if len(args) == 2 {
			name = args[1]
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return err
		}

		contentType := mime.TypeByExtension(filepath.Ext(path))
		content := storage.SizedReader(f, info.Size(), contentType)

		stored, err := backend.Save(cmd.Context(), name, content)
		if err != nil {
			return err
		}
		fmt.Println(backend.URL(stored))
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <name> [file]",
	Short: "Download an object",
	Long:  `Downloads an object and writes it to the given file, or stdout when omitted.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := newBackend(cmd)
		if err != nil {
			return err
		}

		file, err := backend.Open(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		var out io.Writer = os.Stdout
		if len(args) == 2 {
			dest, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer dest.Close()
			out = dest
		}

		_, err = io.Copy(out, file)
		return err
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete an object",
	Long:  `Deletes an object. Deleting a missing object is not an error.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := newBackend(cmd)
		if err != nil {
			return err
		}
		return backend.Delete(cmd.Context(), args[0])
	},
}

var statCmd = &cobra.Command{
	Use:   "stat <name>",
	Short: "Check whether an object exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := newBackend(cmd)
		if err != nil {
			return err
		}

		exists, err := backend.Exists(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !exists {
			fmt.Printf("%s: not found\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("%s: exists\n", args[0])
		return nil
	},
}

var urlCmd = &cobra.Command{
	Use:   "url <name>",
	Short: "Print the public URL of an object",
	Long:  `Prints the object's public URL. No store call is made and no existence check is performed.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := newBackend(cmd)
		if err != nil {
			return err
		}
		fmt.Println(backend.URL(args[0]))
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{putCmd, getCmd, rmCmd, statCmd, urlCmd} {
		c.Flags().StringVar(&flagEndpoint, "endpoint", "", "store endpoint host[:port], overrides STORAGE_ENDPOINT")
		c.Flags().StringVar(&flagAccessKey, "access-key", "", "access key, overrides STORAGE_ACCESS_KEY")
		c.Flags().StringVar(&flagSecretKey, "secret-key", "", "secret key, overrides STORAGE_SECRET_KEY")
		c.Flags().StringVar(&flagBucket, "bucket", "", "bucket name, overrides STORAGE_BUCKET")
		c.Flags().BoolVar(&flagSecure, "secure", false, "use TLS, overrides STORAGE_SECURE")
		RootCmd.AddCommand(c)
	}
}
