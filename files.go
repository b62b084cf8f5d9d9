package sandpack

// FileMap maps virtual file paths to their contents. The embedded editor
// receives it as-is; nothing in the choreography reads or computes it.
type FileMap map[string]string

// Dependency declares one package the embedded editor resolves for the live
// preview.
type Dependency struct {
	Name    string
	Version string
}

// EditorConfig is the static configuration handed to the embedded
// editor/preview widget: the virtual files it opens and the dependencies it
// resolves. It is fixed authoring data, not derived state.
type EditorConfig struct {
	Files        FileMap
	Dependencies []Dependency
	// ActiveFile is the file the editor opens focused.
	ActiveFile string
}

// DefaultEditorConfig returns the file map and dependency list the hero
// ships with.
func DefaultEditorConfig() EditorConfig {
	return EditorConfig{
		ActiveFile: "/App.js",
		Files: FileMap{
			"/index.js": `import React from "react";
import { createRoot } from "react-dom/client";
import App from "./App";
import "./styles.css";

createRoot(document.getElementById("root")).render(<App />);
`,
			"/App.js": `export default function App() {
  return <h1>Hello sandpack</h1>;
}
`,
			"/styles.css": `body {
  font-family: sans-serif;
  margin: 0;
}
`,
		},
		Dependencies: []Dependency{
			{Name: "react", Version: "^18.0.0"},
			{Name: "react-dom", Version: "^18.0.0"},
		},
	}
}
