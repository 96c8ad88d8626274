package renderer

import (
	"fmt"

	"create-endpoint/internal/model"
)

// Fragment bodies. Indentation matches the slot each one is spliced into.
const (
	authFunctionFmt = `
function verifyAuth(request: NextRequest): boolean {
  const authHeader = request.headers.get("authorization");
  const token = authHeader?.replace("Bearer ", "");
  return token === process.env.%s;
}
`

	authCheckBlock = `if (!verifyAuth(request)) {
      return NextResponse.json({ error: "Unauthorized" }, { status: 401 });
    }
    `

	queryValidationFmt = `const { searchParams } = new URL(request.url);
    const params = %s.parse({
      param: searchParams.get("param"),
    });`

	bodyValidationFmt = `const body = await request.json();
    const params = %s.parse(body);`

	serviceCallBlock = `// const result = await exampleService.doSomething(params.param);
    const result = { message: "TODO: Implement service call" };`

	cacheHeadersFmt = `, {
      headers: {
        "Cache-Control": %q,
      },
    }`
)

// authFunction emits the bearer-token comparison helper for protected endpoints
func authFunction(protected bool, secretEnv string) string {
	if !protected {
		return ""
	}
	return fmt.Sprintf(authFunctionFmt, secretEnv)
}

// authCheck emits the early 401 return guarding the handler body
func authCheck(protected bool) string {
	if !protected {
		return ""
	}
	return authCheckBlock
}

// paramLocation names where request input is read from
func paramLocation(method model.Method) string {
	if method == model.MethodGet {
		return model.ParamsFromQuery
	}
	return model.ParamsFromBody
}

// validationCode parses input with the endpoint schema: query string for GET,
// awaited JSON body for POST.
func validationCode(method model.Method, schema model.SchemaIdentifier) string {
	if method == model.MethodGet {
		return fmt.Sprintf(queryValidationFmt, schema.Ref())
	}
	return fmt.Sprintf(bodyValidationFmt, schema.Ref())
}

func serviceCall() string {
	return serviceCallBlock
}

// cacheHeaders appends public cache headers to GET responses
func cacheHeaders(method model.Method, cacheControl string) string {
	if method != model.MethodGet || cacheControl == "" {
		return ""
	}
	return fmt.Sprintf(cacheHeadersFmt, cacheControl)
}
