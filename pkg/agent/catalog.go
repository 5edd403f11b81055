package agent

// Catalog returns the tool set advertised to the planner: browser
// actions, wallet drivers, and the control tools that end steps and
// runs.
func Catalog() []ToolDefinition {
	ref := prop("string", `Element ref from the most recent browser_snapshot, e.g. "e5"`)
	selector := prop("string", "CSS selector, used only when no snapshot ref is available")

	return []ToolDefinition{
		{
			Name: ToolSnapshot,
			Description: "Capture a textual outline of the visible page. Interactive elements " +
				"carry refs the other browser tools accept. Refs expire on the next snapshot; " +
				"always snapshot before acting on a page you have not seen.",
			InputSchema: objSchema(nil),
		},
		{
			Name:        ToolClick,
			Description: "Click an element.",
			InputSchema: objSchema(map[string]interface{}{"ref": ref, "selector": selector}),
		},
		{
			Name:        ToolType,
			Description: "Clear a field and type text into it. Set submit to press Enter afterwards.",
			InputSchema: objSchema(map[string]interface{}{
				"ref":      ref,
				"selector": selector,
				"text":     prop("string", "Text to type"),
				"submit":   prop("boolean", "Press Enter after typing"),
			}, "text"),
		},
		{
			Name:        ToolPressKey,
			Description: "Press a keyboard key on the focused element, e.g. Enter, Escape, Tab.",
			InputSchema: objSchema(map[string]interface{}{
				"key": prop("string", "Key name"),
			}, "key"),
		},
		{
			Name:        ToolSelect,
			Description: "Select an option of a dropdown by its value or visible label.",
			InputSchema: objSchema(map[string]interface{}{
				"ref":      ref,
				"selector": selector,
				"value":    prop("string", "Option value or label"),
			}, "value"),
		},
		{
			Name:        ToolNavigate,
			Description: "Navigate the primary tab to a URL.",
			InputSchema: objSchema(map[string]interface{}{
				"url": prop("string", "Absolute URL"),
			}, "url"),
		},
		{
			Name:        ToolScroll,
			Description: "Scroll the page by pixel deltas. Positive dy scrolls down. Defaults to one viewport down.",
			InputSchema: objSchema(map[string]interface{}{
				"dx": prop("integer", "Horizontal delta in pixels"),
				"dy": prop("integer", "Vertical delta in pixels"),
			}),
		},
		{
			Name:        ToolWait,
			Description: "Pause for a number of seconds (max 30). Use sparingly, for animations or pending transactions.",
			InputSchema: objSchema(map[string]interface{}{
				"seconds": prop("integer", "Seconds to wait"),
			}),
		},
		{
			Name:        ToolGoBack,
			Description: "Navigate the primary tab back one history entry.",
			InputSchema: objSchema(nil),
		},
		{
			Name:        ToolEvaluate,
			Description: "Evaluate a JavaScript expression in the page and return its JSON-encoded result. Diagnostic only.",
			InputSchema: objSchema(map[string]interface{}{
				"expression": prop("string", "JavaScript expression"),
			}, "expression"),
		},
		{
			Name:        ToolScreenshot,
			Description: "Capture a screenshot of the primary tab and store it as a run artifact.",
			InputSchema: objSchema(nil),
		},
		{
			Name:        ToolAssertWalletConnected,
			Description: "Check whether the dApp reports a connected wallet account. Fails when no account is exposed.",
			InputSchema: objSchema(nil),
		},
		{
			Name: ToolWalletApprove,
			Description: "Approve the pending wallet connection popup. Handles the popup wherever it is " +
				"in its lifecycle; reports when no popup appeared.",
			InputSchema: objSchema(nil),
		},
		{
			Name:        ToolWalletSign,
			Description: "Sign the pending wallet signature request, including sign-in messages.",
			InputSchema: objSchema(nil),
		},
		{
			Name:        ToolWalletConfirmTx,
			Description: "Confirm the pending wallet transaction.",
			InputSchema: objSchema(nil),
		},
		{
			Name:        ToolWalletSwitchNetwork,
			Description: "Approve the pending network-switch request for the named network, adding the network if prompted.",
			InputSchema: objSchema(map[string]interface{}{
				"network": prop("string", "Network name as the dApp presents it"),
			}, "network"),
		},
		{
			Name:        ToolWalletReject,
			Description: "Reject the pending wallet popup.",
			InputSchema: objSchema(nil),
		},
		{
			Name:        ToolWalletHandleSIWE,
			Description: "Handle a delayed sign-in-with-Ethereum popup that follows a connection approval.",
			InputSchema: objSchema(nil),
		},
		{
			Name:        ToolStepComplete,
			Description: "Mark the current step complete. Call when the step's goal is satisfied, including when the page already satisfied it.",
			InputSchema: objSchema(map[string]interface{}{
				"summary": prop("string", "One-line summary of what was done"),
			}),
		},
		{
			Name:        ToolStepFailed,
			Description: "Mark the current step failed after the goal proved unreachable.",
			InputSchema: objSchema(map[string]interface{}{
				"reason": prop("string", "Why the step could not be completed"),
			}, "reason"),
		},
		{
			Name:        ToolTestComplete,
			Description: "End the whole test early with an overall verdict.",
			InputSchema: objSchema(map[string]interface{}{
				"status": map[string]interface{}{
					"type":        "string",
					"enum":        []interface{}{"passed", "failed"},
					"description": "Overall verdict",
				},
				"reason": prop("string", "Verdict rationale"),
			}, "status"),
		},
	}
}

func prop(typ, desc string) map[string]interface{} {
	return map[string]interface{}{"type": typ, "description": desc}
}

func objSchema(props map[string]interface{}, required ...string) map[string]interface{} {
	if props == nil {
		props = map[string]interface{}{}
	}
	s := map[string]interface{}{"properties": props}
	if len(required) > 0 {
		req := make([]interface{}, 0, len(required))
		for _, r := range required {
			req = append(req, r)
		}
		s["required"] = req
	}
	return s
}
