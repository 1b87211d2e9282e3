package internal

// Args is the argument set forwarded to a resolved action. Positional
// arguments come from the default path policy; Named bindings come from a
// matched custom route and replace positional ones entirely.
type Args struct {
	Positional []string
	Named      map[string]string
}

// ResolvedAction is the outcome of resolution for one request:
// which controller and action to invoke, and with what arguments.
// Produced fresh per dispatch.
type ResolvedAction struct {
	Controller string
	Action     string
	Args       Args
}

// resolveAction determines the final action name and argument set for the
// given controller and request segments.
//
// Default policy: segment one names the action (DefaultAction when
// absent), the rest become positional arguments with empty entries
// dropped. Custom-route policy: the controller's RouteTable entries are
// tried in declaration order against the segments following the
// controller segment; the first match wins and its named bindings replace
// the positional arguments. Finally, an action name missing from the
// controller's Actions set resolves to the fixed not-found pair instead.
func resolveAction(ctrl Controller, name string, segments []string) ResolvedAction {
	res := ResolvedAction{Controller: name, Action: DefaultAction}

	if len(segments) > 1 {
		res.Action = segments[1]
	}
	if len(segments) > 2 {
		res.Args.Positional = dropEmpty(segments[2:])
	}

	var rest []string
	if len(segments) > 1 {
		rest = segments[1:]
	}
	for _, route := range ctrl.Routes() {
		params, ok := CompileRoute(route.Pattern).Match(rest)
		if !ok {
			continue
		}
		res.Action = route.Action
		res.Args = Args{Named: dropEmptyValues(params)}
		break
	}

	if _, ok := ctrl.Actions()[res.Action]; !ok {
		return ResolvedAction{Controller: NotFoundController, Action: NotFoundAction}
	}
	return res
}

// dropEmpty removes empty-equivalent entries before invocation.
func dropEmpty(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

func dropEmptyValues(params map[string]string) map[string]string {
	for k, v := range params {
		if v == "" {
			delete(params, k)
		}
	}
	return params
}
