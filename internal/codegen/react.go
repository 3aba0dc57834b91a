package codegen

import (
	"fmt"

	"sitegen_server/internal/types"
)

const reactPackageJSON = `{
  "name": "generated-site",
  "private": true,
  "version": "0.1.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "vite build",
    "preview": "vite preview"
  },
  "dependencies": {
    "react": "^18.3.1",
    "react-dom": "^18.3.1"
  },
  "devDependencies": {
    "@vitejs/plugin-react": "^4.3.1",
    "vite": "^5.4.0"
  }
}
`

const reactMain = `import React from "react";
import ReactDOM from "react-dom/client";
import App from "./App.jsx";
import "./index.css";

ReactDOM.createRoot(document.getElementById("root")).render(
  <React.StrictMode>
    <App />
  </React.StrictMode>
);
`

func generateReact(plan types.SitePlan) types.GeneratedFiles {
	dir := direction(plan.Meta.Lang)

	index := fmt.Sprintf(`<!DOCTYPE html>
<html lang="%s" dir="%s">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
  <meta name="description" content="%s">
</head>
<body>
  <div id="root"></div>
  <script type="module" src="/src/main.jsx"></script>
</body>
</html>
`, esc(langOr(plan.Meta.Lang)), dir, esc(plan.Meta.Title), esc(plan.Meta.Description))

	app := fmt.Sprintf(`import { useEffect } from "react";

export default function App() {
  useEffect(() => {
    const targets = document.querySelectorAll(".reveal");
    const observer = new IntersectionObserver((entries) => {
      entries.forEach((entry) => {
        if (entry.isIntersecting) {
          entry.target.classList.add("visible");
          observer.unobserve(entry.target);
        }
      });
    }, { threshold: 0.15 });
    targets.forEach((el) => observer.observe(el));
    return () => observer.disconnect();
  }, []);

  return (
    <main dir=%s>
%s    </main>
  );
}
`, jsString(dir), sectionsJSX(plan, reactClasses, "      "))

	return files(
		"package.json", reactPackageJSON,
		"index.html", index,
		"src/main.jsx", reactMain,
		"src/App.jsx", app,
		"src/index.css", stylesheet(paletteOf(plan.Style)),
	)
}
