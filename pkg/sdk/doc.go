// Package docserver is an in-process client for the NextMCP documentation
// knowledge base: search, full documents, code examples, workflow prompts
// and statistics, without running the MCP or HTTP server.
//
//	client, _ := docserver.New(docserver.WithLogger(slog.Default()))
//	res := client.Search(ctx, "deployment")
//	doc, err := client.Doc(ctx, "tools")
//	if errors.Is(err, docserver.ErrDocumentNotFound) {
//	    // ...
//	}
//	fmt.Println(client.BuildServerPrompt(ctx, "tool-based", "auth,metrics"))
package docserver
