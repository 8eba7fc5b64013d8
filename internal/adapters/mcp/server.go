// Package mcp exposes the generator as a Model Context Protocol server so
// AI agents can request practice problems and assembled worksheets as
// tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/abacus"
	"github.com/aretw0/abacus/internal/config"
	"github.com/aretw0/abacus/internal/generator"
	"github.com/aretw0/abacus/internal/worksheet"
	"github.com/aretw0/abacus/pkg/algebra"
	"github.com/aretw0/abacus/pkg/render"
)

// ProblemsResponse is the structured result of the generation and listing
// tools.
type ProblemsResponse struct {
	Problems []algebra.Problem `json:"problems" jsonschema_description:"Generated problems, question and solution in both text and LaTeX"`
}

// SolveResponse is the structured result of the equation solving tool.
type SolveResponse struct {
	Question      string `json:"question" jsonschema_description:"The equation as posed"`
	Solution      string `json:"solution" jsonschema_description:"Roots or interval union, plain text"`
	SolutionLaTeX string `json:"solution_latex" jsonschema_description:"The solution typeset as LaTeX"`
}

// WorksheetResponse is the structured result of the worksheet tool.
type WorksheetResponse struct {
	Document string `json:"document" jsonschema_description:"The assembled worksheet document"`
	Count    int    `json:"count" jsonschema_description:"Number of problems in the worksheet"`
}

// Server wraps a Generator and exposes it as an MCP Server.
type Server struct {
	gen       *generator.Generator
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(gen *generator.Generator) *Server {
	s := &Server{
		gen:       gen,
		mcpServer: server.NewMCPServer("abacus-mcp", strings.TrimSpace(abacus.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	generateTool := mcp.NewTool("generate_problems",
		mcp.WithDescription("Generate practice problems of a given kind and add them to the worksheet. "+
			"Kinds: numerical, linear, quadratic, factorable, frac_to_dec, dec_to_frac."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("Problem kind")),
		mcp.WithNumber("count", mcp.Description("How many problems to generate (default 1)")),
		mcp.WithString("params", mcp.Description("JSON object with kind-specific sampling parameters (optional)")),
		mcp.WithOutputSchema[ProblemsResponse](),
	)
	s.mcpServer.AddTool(generateTool, mcp.NewStructuredToolHandler(s.handleGenerate))

	listTool := mcp.NewTool("list_problems",
		mcp.WithDescription("List every problem generated so far, in order."),
		mcp.WithOutputSchema[ProblemsResponse](),
	)
	s.mcpServer.AddTool(listTool, mcp.NewStructuredToolHandler(s.handleList))

	s.mcpServer.AddTool(mcp.NewTool("clear_problems",
		mcp.WithDescription("Remove every generated problem, starting a fresh worksheet."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := s.gen.Store().Clear(ctx); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("clear failed: %v", err)), nil
		}
		return mcp.NewToolResultText("cleared"), nil
	})

	solveTool := mcp.NewTool("solve_equation",
		mcp.WithDescription("Solve a polynomial equation or inequality against zero. "+
			`Coefficients are listed from the highest order down, e.g. "1,0,-4" for x^2 - 4.`),
		mcp.WithString("coefficients", mcp.Required(), mcp.Description("Comma-separated integer coefficients, highest order first")),
		mcp.WithString("variable", mcp.Description("Variable name (default x)")),
		mcp.WithString("relation", mcp.Description("One of = < > <= >= (default =)")),
		mcp.WithOutputSchema[SolveResponse](),
	)
	s.mcpServer.AddTool(solveTool, mcp.NewStructuredToolHandler(s.handleSolve))

	worksheetTool := mcp.NewTool("build_worksheet",
		mcp.WithDescription("Assemble the generated problems into a worksheet document."),
		mcp.WithString("title", mcp.Description("Document title")),
		mcp.WithString("author", mcp.Description("Header author line")),
		mcp.WithString("message", mcp.Description("Introductory message")),
		mcp.WithString("format", mcp.Description("Output format: latex (default) or markdown")),
		mcp.WithOutputSchema[WorksheetResponse](),
	)
	s.mcpServer.AddTool(worksheetTool, mcp.NewStructuredToolHandler(s.handleWorksheet))
}

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ProblemsResponse, error) {
	kind, _ := args["kind"].(string)
	count := 1
	if c, ok := args["count"].(float64); ok && c >= 1 {
		count = int(c)
	}

	params := map[string]any{}
	if raw, ok := args["params"].(string); ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &params); err != nil {
			return ProblemsResponse{}, fmt.Errorf("invalid params JSON: %w", err)
		}
	}

	before, err := s.gen.Store().Len(ctx)
	if err != nil {
		return ProblemsResponse{}, err
	}

	ws := &config.Worksheet{Problems: []config.Block{{Kind: kind, Count: count, Params: params}}}
	if err := config.Apply(ctx, s.gen, ws); err != nil {
		return ProblemsResponse{}, fmt.Errorf("generation failed: %w", err)
	}

	all, err := s.gen.Store().List(ctx)
	if err != nil {
		return ProblemsResponse{}, err
	}
	return ProblemsResponse{Problems: all[before:]}, nil
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ProblemsResponse, error) {
	problems, err := s.gen.Store().List(ctx)
	if err != nil {
		return ProblemsResponse{}, err
	}
	return ProblemsResponse{Problems: problems}, nil
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SolveResponse, error) {
	raw, _ := args["coefficients"].(string)
	var coeffs []int64
	for _, part := range strings.Split(raw, ",") {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return SolveResponse{}, fmt.Errorf("invalid coefficient %q", part)
		}
		coeffs = append(coeffs, n)
	}

	variable, _ := args["variable"].(string)
	if variable == "" {
		variable = "x"
	}
	relation := algebra.RelEqual
	if rel, ok := args["relation"].(string); ok && rel != "" {
		relation = algebra.Relation(rel)
	}

	engine := s.gen.Engine()
	sym := engine.Symbol(variable)
	terms := make([]algebra.Term, 0, len(coeffs))
	ops := make([]string, 0, len(coeffs)+1)
	ops = append(ops, "")
	for i, c := range coeffs {
		v := engine.Int(c)
		for j := len(coeffs) - 1 - i; j > 0; j-- {
			next, err := v.Mul(sym, false)
			if err != nil {
				return SolveResponse{}, err
			}
			v = next
		}
		terms = append(terms, algebra.NewTerm(v))
		if i < len(coeffs)-1 {
			ops = append(ops, "+")
		}
	}
	ops = append(ops, "")

	lhs, err := algebra.NewExpression(terms, terms, ops)
	if err != nil {
		return SolveResponse{}, err
	}
	zero := algebra.NewTerm(engine.Int(0))
	rhs, err := algebra.NewExpression([]algebra.Term{zero}, []algebra.Term{zero}, []string{"", ""})
	if err != nil {
		return SolveResponse{}, err
	}
	eq, err := algebra.NewEquation(lhs, rhs, relation, variable)
	if err != nil {
		return SolveResponse{}, err
	}

	p, err := render.New(engine).FromEquation(eq)
	if err != nil {
		return SolveResponse{}, err
	}
	return SolveResponse{
		Question:      p.QuestionText,
		Solution:      p.SolutionText,
		SolutionLaTeX: p.SolutionLaTeX,
	}, nil
}

func (s *Server) handleWorksheet(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (WorksheetResponse, error) {
	problems, err := s.gen.Store().List(ctx)
	if err != nil {
		return WorksheetResponse{}, err
	}

	var opts []worksheet.Option
	if title, ok := args["title"].(string); ok && title != "" {
		opts = append(opts, worksheet.WithTitle(title))
	}
	if author, ok := args["author"].(string); ok {
		opts = append(opts, worksheet.WithAuthor(author))
	}
	if message, ok := args["message"].(string); ok {
		opts = append(opts, worksheet.WithMessage(message))
	}
	builder := worksheet.New(opts...)

	format, _ := args["format"].(string)
	var doc string
	switch format {
	case "", "latex":
		doc = builder.LaTeX(problems)
	case "markdown":
		doc = builder.Markdown(problems)
	default:
		return WorksheetResponse{}, fmt.Errorf("unknown format %q", format)
	}
	return WorksheetResponse{Document: doc, Count: len(problems)}, nil
}
