// Package cli parses cadastro command configuration and runs its subcommands.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/message"

	"github.com/zoobzio/cadastro"
	"github.com/zoobzio/cadastro/bson"
	"github.com/zoobzio/cadastro/campaign"
	"github.com/zoobzio/cadastro/json"
	"github.com/zoobzio/cadastro/messages"
	"github.com/zoobzio/cadastro/msgpack"
	"github.com/zoobzio/cadastro/xml"
	"github.com/zoobzio/cadastro/yaml"
)

// DotenvFile is loaded, when present, before the environment is parsed.
// Variables already set in the environment win.
const DotenvFile = ".env"

var (
	// ErrUsage indicates a malformed command line.
	ErrUsage = errors.New("usage")

	// ErrMissingPepper indicates check ran without a CPF fingerprint key.
	ErrMissingPepper = errors.New("CADASTRO_PEPPER is not set")

	// ErrInvalid indicates the checked value or form was rejected. Its
	// messages have already been written to the output.
	ErrInvalid = errors.New("invalid input")
)

const usage = `usage:
  cadastro format   <cpf|phone|cep|email> <value>
  cadastro validate <cpf|phone|cep|email> <value>
  cadastro check    [-codec json|yaml|msgpack|bson|xml] <file|->
  cadastro campaign [key]`

// Config holds cadastro command configuration.
type Config struct {
	Locale string `env:"CADASTRO_LOCALE" envDefault:"pt-BR"`
	Codec  string `env:"CADASTRO_CODEC" envDefault:"json"`

	// Pepper keys the CPF fingerprint computed by check. It is read from
	// the environment only and removed from it once parsed.
	Pepper string `env:"CADASTRO_PEPPER,unset"`

	// Args are the subcommand and its arguments.
	Args []string `env:"-"`
}

// ParseConfig loads the dotenv file and environment defaults, then parses
// flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if err := loadDotenv(DotenvFile); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "message locale (pt-BR, en-US)")
	fs.StringVar(&cfg.Codec, "codec", cfg.Codec, "payload codec for check (json, yaml, msgpack, bson, xml)")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Args = fs.Args()
	return cfg, nil
}

func loadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Codecs returns the payload codecs by name.
func Codecs() map[string]cadastro.Codec {
	return map[string]cadastro.Codec{
		"json":    json.New(),
		"yaml":    yaml.New(),
		"msgpack": msgpack.New(),
		"bson":    bson.New(),
		"xml":     xml.New(),
	}
}

func lookupCodec(name string) (cadastro.Codec, error) {
	codecs := Codecs()
	c, ok := codecs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		names := make([]string, 0, len(codecs))
		for n := range codecs {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown codec %q (want one of %s)", name, strings.Join(names, ", "))
	}
	return c, nil
}

var registerMessages = sync.OnceValue(func() error {
	return messages.Default().Register()
})

// printer returns the message printer for the locale matching locale.
func printer(locale string) (*message.Printer, error) {
	if err := registerMessages(); err != nil {
		return nil, fmt.Errorf("register messages: %w", err)
	}
	return messages.Default().Printer(locale), nil
}

// Run executes the subcommand named by cfg.Args.
func Run(ctx context.Context, cfg Config, stdin io.Reader, out io.Writer) error {
	if len(cfg.Args) == 0 {
		return fmt.Errorf("%w: missing command\n%s", ErrUsage, usage)
	}

	cmd, args := cfg.Args[0], cfg.Args[1:]
	switch cmd {
	case "format":
		return runFormat(args, out)
	case "validate":
		return runValidate(cfg, args, out)
	case "check":
		return runCheck(ctx, cfg, args, stdin, out)
	case "campaign":
		return runCampaign(args, out)
	default:
		return fmt.Errorf("%w: unknown command %q\n%s", ErrUsage, cmd, usage)
	}
}

func fieldArg(args []string) (cadastro.Field, string, error) {
	if len(args) != 2 {
		return "", "", fmt.Errorf("%w: want <field> <value>\n%s", ErrUsage, usage)
	}
	kind := cadastro.Field(strings.ToLower(args[0]))
	if !cadastro.IsValidField(kind) {
		return "", "", fmt.Errorf("%w: unknown field %q", ErrUsage, args[0])
	}
	return kind, args[1], nil
}

var formatters = map[cadastro.Field]cadastro.Formatter{
	cadastro.FieldCPF:   cadastro.CPFFormatter(),
	cadastro.FieldPhone: cadastro.PhoneFormatter(),
	cadastro.FieldCEP:   cadastro.CEPFormatter(),
	cadastro.FieldEmail: cadastro.EmailFormatter(),
}

var validators = map[cadastro.Field]cadastro.Validator{
	cadastro.FieldCPF:   cadastro.CPFValidator(),
	cadastro.FieldPhone: cadastro.PhoneValidator(),
	cadastro.FieldCEP:   cadastro.CEPValidator(),
	cadastro.FieldEmail: cadastro.EmailValidator(),
}

func runFormat(args []string, out io.Writer) error {
	kind, value, err := fieldArg(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatters[kind].Format(value))
	return nil
}

func runValidate(cfg Config, args []string, out io.Writer) error {
	kind, value, err := fieldArg(args)
	if err != nil {
		return err
	}
	if validators[kind].Valid(value) {
		fmt.Fprintln(out, "ok")
		return nil
	}
	p, err := printer(cfg.Locale)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, p.Sprintf(messages.FieldKey(kind, false)))
	return ErrInvalid
}

func runCheck(ctx context.Context, cfg Config, args []string, stdin io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	codecName := fs.String("codec", cfg.Codec, "payload codec")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: want <file|->\n%s", ErrUsage, usage)
	}

	c, err := lookupCodec(*codecName)
	if err != nil {
		return err
	}
	if cfg.Pepper == "" {
		return ErrMissingPepper
	}
	p, err := printer(cfg.Locale)
	if err != nil {
		return err
	}

	data, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}

	proc, err := cadastro.NewRegistrationProcessor(c, []byte(cfg.Pepper))
	if err != nil {
		return fmt.Errorf("registration processor: %w", err)
	}

	reg, err := proc.Receive(ctx, data)

	var verr *cadastro.ValidationError
	switch {
	case errors.As(err, &verr):
		for _, fe := range verr.Fields {
			fmt.Fprintln(out, p.Sprintf(messages.FieldKey(fe.Kind, true)))
		}
		fmt.Fprintln(out, p.Sprintf(messages.KeySubmitFailure))
		return ErrInvalid
	case err != nil:
		return fmt.Errorf("check: %w", err)
	}

	if _, err := proc.Store(ctx, reg); err != nil {
		return fmt.Errorf("check: %w", err)
	}
	fmt.Fprintln(out, p.Sprintf(messages.KeySubmitSuccess))
	return nil
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

func runCampaign(args []string, out io.Writer) error {
	catalog := campaign.Default()

	switch len(args) {
	case 0:
		for _, c := range catalog.All() {
			fmt.Fprintf(out, "%s\t%3d%%\t%s\n", c.Key, c.Progress, c.Title)
		}
		return nil
	case 1:
		c, err := catalog.Lookup(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n%s\n%s (%d%%)\n", c.Title, c.Description, c.Goal, c.Progress)
		return nil
	default:
		return fmt.Errorf("%w: want [key]\n%s", ErrUsage, usage)
	}
}
