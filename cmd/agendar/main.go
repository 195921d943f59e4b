// Command agendar is a terminal front end for the booking API: it logs an
// employee in, lists the professionals and books appointments.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"augebit/internal/client"
	"augebit/internal/validation"
)

const defaultAPIURL = "http://127.0.0.1:3000"

const usage = `uso: agendar [-api URL] [-sessao DIR] <comando> [opções]

comandos:
  login          -email E -senha S
  sair           encerra a sessão salva
  quem           mostra o usuário logado
  profissionais  lista os profissionais disponíveis
  agendar        -nome -cpf -telefone -email -data DD/MM/AAAA -horario HH:MM -profissional
`

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("agendar", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() { fmt.Fprint(stderr, usage) }
	apiURL := global.String("api", envOr("AUGEBIT_API_URL", defaultAPIURL), "endereço da API")
	sessionDir := global.String("sessao", envOr("AUGEBIT_SESSION_DIR", defaultSessionDir()), "diretório da sessão")
	verbose := global.Bool("v", false, "registra as chamadas HTTP")
	if err := global.Parse(args); err != nil {
		return 2
	}
	if global.NArg() == 0 {
		global.Usage()
		return 2
	}

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	c := client.New(*apiURL,
		client.WithSessionStore(client.NewFileSessionStore(*sessionDir)),
		client.WithLogger(logger),
	)

	cmd, rest := global.Arg(0), global.Args()[1:]
	switch cmd {
	case "login":
		return login(ctx, c, rest, stdout, stderr)
	case "sair":
		if err := c.Logout(); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	case "quem":
		fmt.Fprintln(stdout, c.CurrentSession().WelcomeMessage())
		return 0
	case "profissionais":
		return professionals(ctx, c, stdout, stderr)
	case "agendar":
		return book(ctx, c, rest, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "comando desconhecido: %s\n", cmd)
		global.Usage()
		return 2
	}
}

func login(ctx context.Context, c *client.Client, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(stderr)
	email := fs.String("email", "", "email do funcionário")
	senha := fs.String("senha", "", "senha")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	session, err := c.Login(ctx, *email, *senha)
	if err != nil {
		report(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, session.WelcomeMessage())
	return 0
}

func professionals(ctx context.Context, c *client.Client, stdout, stderr io.Writer) int {
	list, err := c.Professionals(ctx)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	for _, p := range list {
		fmt.Fprintln(stdout, p.Label)
	}
	return 0
}

func book(ctx context.Context, c *client.Client, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("agendar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var f client.Form
	fs.StringVar(&f.Nome, "nome", "", "nome do paciente")
	fs.StringVar(&f.CPF, "cpf", "", "CPF")
	fs.StringVar(&f.Telefone, "telefone", "", "telefone")
	fs.StringVar(&f.Email, "email", "", "email")
	fs.StringVar(&f.Data, "data", "", "data DD/MM/AAAA")
	fs.StringVar(&f.Horario, "horario", "", "horário HH:MM")
	fs.StringVar(&f.Profissional, "profissional", "", "profissional")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	// Accept bare digits the same way the masked inputs do.
	f.Data = validation.MaskDate(f.Data)
	f.Horario = validation.MaskTime(f.Horario)

	booking, err := c.SubmitAppointment(ctx, f)
	if err != nil {
		report(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, client.BookingConfirmedMessage)
	if booking.ID != 0 {
		fmt.Fprintf(stdout, "agendamento #%d\n", booking.ID)
	}
	return 0
}

// report prints err the way the app surfaces it: alerts get a title, banners
// a plain line, and silent failures only reach the log.
func report(w io.Writer, err error) {
	msg := client.UserMessage(err)
	if msg == "" {
		return
	}
	var formErr *client.FormError
	if client.ShouldAlert(err) && errors.As(err, &formErr) {
		fmt.Fprintf(w, "%s: %s\n", formErr.Title, msg)
		return
	}
	fmt.Fprintln(w, msg)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultSessionDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".augebit"
	}
	return filepath.Join(dir, "augebit")
}
