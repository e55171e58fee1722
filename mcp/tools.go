package mcp

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ka2n/ppa/api"
	"github.com/ka2n/ppa/api/field"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
	"github.com/morikuni/failure/v2"
)

var validate = validator.New()

func InitTools(f api.Fetcher) []server.ServerTool {
	tools := []server.ServerTool{}

	tools = append(tools, newServerTool(FetchGenePanels(f)))
	tools = append(tools, newServerTool(ListFields()))

	return tools
}

// FetchGenePanels looks up genes in PanelApp and returns the text report
func FetchGenePanels(f api.Fetcher) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"fetch_gene_panels",
			mcp.WithDescription("Fetch PanelApp gene panel records (evidence, phenotypes, mode of inheritance, ...) for one or more genes"),
			mcp.WithString("genes", mcp.Required(), mcp.Description("Gene symbols separated by commas or whitespace, e.g. BRCA1, TP53")),
			mcp.WithString("fields", mcp.Description("Comma-separated fields to report: "+field.KnownList())),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Genes  string `mapstructure:"genes" validate:"required"`
				Fields string `mapstructure:"fields" validate:"omitempty"`
			}
			var args ToolArguments
			if err := mapstructure.Decode(req.Params.Arguments, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := validate.StructCtx(ctx, args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			selection, err := field.Parse(args.Fields)
			if err != nil {
				return mcp.NewToolResultError(userMessage(err)), nil
			}

			// commas and whitespace both separate genes
			src := api.StreamSource{Reader: strings.NewReader(strings.NewReplacer(",", "\n", " ", "\n").Replace(args.Genes))}
			query, err := api.NewQuery(src, selection)
			if err != nil {
				return mcp.NewToolResultError(userMessage(err)), nil
			}

			result, err := api.Lookup(ctx, f, query)
			if failure.Is(err, api.ErrNoResults) {
				return mcp.NewToolResultText(userMessage(err)), nil
			}
			if err != nil {
				return mcp.NewToolResultError(userMessage(err)), nil
			}

			return mcp.NewToolResultText(api.Report(result, selection)), nil
		}
}

// ListFields describes the fields accepted by fetch_gene_panels
func ListFields() (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"list_gene_fields",
			mcp.WithDescription("List the gene record fields that fetch_gene_panels can report"),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			var b strings.Builder
			for _, f := range field.Known {
				b.WriteString(f.String())
				if f.IsList() {
					b.WriteString(" (list)")
				}
				if f.IsDefault() {
					b.WriteString(" (default)")
				}
				b.WriteString("\n")
			}
			return mcp.NewToolResultText(b.String()), nil
		}
}

func userMessage(err error) string {
	if msg := failure.MessageOf(err); msg != "" {
		return msg.String()
	}
	return err.Error()
}
