package workflow

// Sample returns a small CI/CD pipeline used by the CLI as a demo and by
// tests as a realistic fixture.
func Sample() *Workflow {
	w := New("Sample CI/CD Pipeline")

	w.AddStep(&Step{ID: "start", Label: "Start", Kind: "start", Icon: "🚀"})
	w.AddStep(&Step{ID: "checkout", Label: "Git Checkout", Kind: "process", Icon: "📦"})
	w.AddStep(&Step{ID: "build", Label: "Build", Kind: "tool", Icon: "🔨"})
	w.AddStep(&Step{ID: "test", Label: "Run Tests", Kind: "tool", Icon: "🧪"})
	w.AddStep(&Step{ID: "decision", Label: "Tests Passed?", Kind: "decision", Icon: "❓"})
	w.AddStep(&Step{ID: "deploy", Label: "Deploy", Kind: "process", Icon: "🚀"})
	w.AddStep(&Step{ID: "notify_success", Label: "Success", Kind: "result", Icon: "✅"})
	w.AddStep(&Step{ID: "notify_failure", Label: "Failure", Kind: "result", Icon: "❌"})

	w.AddEdge(&Edge{Source: "start", Target: "checkout"})
	w.AddEdge(&Edge{Source: "checkout", Target: "build"})
	w.AddEdge(&Edge{Source: "build", Target: "test"})
	w.AddEdge(&Edge{Source: "test", Target: "decision"})
	w.AddEdge(&Edge{Source: "decision", Target: "deploy", Label: "Yes"})
	w.AddEdge(&Edge{Source: "decision", Target: "notify_failure", Label: "No"})
	w.AddEdge(&Edge{Source: "deploy", Target: "notify_success"})

	return w
}
