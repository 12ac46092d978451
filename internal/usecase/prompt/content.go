package prompt

import domprompt "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/prompt"

// Build-server sections, in emission order. setupSection follows the
// "type: <server type>" header line.
const setupSection = `

Step 1: Setup
- Create app.py
- Import: from nextmcp import NextMCP
- Initialize: app = NextMCP("your-server-name", description="...")

Step 2: Implement primitives based on server type:
`

const toolBasedSection = `
- Add tools with @app.tool() decorator
- Each tool should have clear docstrings
- Return JSON-serializable data
- Handle errors gracefully
`

const documentationSection = `
- Add search tool with @app.tool()
- Add resource templates with @app.resource_template()
- Add prompts for common workflows with @app.prompt()
- Include statistics resource
`

const apiWrapperSection = `
- Create tools for each API endpoint
- Add authentication if API requires it
- Implement rate limiting
- Cache responses where appropriate
`

const authSection = `
Step 3: Add Authentication
- Choose: APIKeyAuth, JWTAuth, or RBACAuth
- Add keys/tokens for test users
- Apply middleware: app.add_middleware(auth)
`

const metricsSection = `
Step 4: Add Metrics
- Import: from nextmcp.metrics import PrometheusMetrics
- Initialize: metrics = PrometheusMetrics()
- Add middleware: app.add_middleware(metrics)
`

const closingSection = `
Final Step: Run server
- Add: if __name__ == "__main__": app.run()
- Test locally: python app.py
- Access: http://localhost:8000

Use search_documentation() and get_example_code() tools for reference.
`

// archetypeSections has no data-provider entry; that archetype only gets
// the generic sections.
var archetypeSections = map[domprompt.Archetype]string{
	domprompt.ToolBased:     toolBasedSection,
	domprompt.Documentation: documentationSection,
	domprompt.APIWrapper:    apiWrapperSection,
}

// debugSteps holds the remediation text per issue type.
var debugSteps = map[domprompt.Issue]string{
	domprompt.ServerNotStarting: `Debugging server startup issues:

1. Check Python version: python --version (requires 3.10+)
2. Verify NextMCP installation: pip show nextmcp
3. Check for import errors: python -c "import nextmcp; print(nextmcp.__version__)"
4. Review error logs for stack traces
5. Ensure port 8000 is available: lsof -i :8000

Common causes:
- Missing dependencies
- Port already in use
- Python version incompatibility
- Syntax errors in app.py
`,
	domprompt.ToolNotWorking: `Debugging tool execution:

1. Verify decorator is correct: @app.tool()
2. Check function signature has type hints
3. Ensure return type is JSON-serializable
4. Test function independently: python -c "from app import my_tool; print(my_tool('test'))"
5. Review server logs for exceptions

Common causes:
- Missing type hints
- Returning non-JSON types (objects, datetime, etc.)
- Uncaught exceptions in tool code
- Incorrect argument names
`,
	domprompt.AuthFailing: `Debugging authentication:

1. Verify middleware is added: app.add_middleware(auth)
2. Check API key/token format
3. Review auth logs for rejection reasons
4. Test with curl: curl -H "Authorization: Bearer TOKEN" http://localhost:8000/health
5. Ensure auth middleware is before other middleware

Common causes:
- Wrong token format
- Expired JWT tokens
- Middleware order incorrect
- Missing auth header in request
`,
	domprompt.DeploymentError: `Debugging deployment issues:

1. Check health endpoint: curl http://your-app.com/health
2. Review deployment logs
3. Verify environment variables are set
4. Ensure correct Python version in runtime
5. Check Dockerfile if using containers

Common causes:
- Missing environment variables
- Incorrect PORT binding
- Health check timeout
- Dependencies not installed
- File paths incorrect in production

Use get_full_doc("deployment") for detailed deployment guide.
`,
}
