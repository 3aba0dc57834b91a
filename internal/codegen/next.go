package codegen

import (
	"fmt"

	"sitegen_server/internal/types"
)

const nextPackageJSON = `{
  "name": "generated-site",
  "private": true,
  "version": "0.1.0",
  "scripts": {
    "dev": "next dev",
    "build": "next build",
    "start": "next start"
  },
  "dependencies": {
    "next": "14.2.5",
    "react": "^18.3.1",
    "react-dom": "^18.3.1"
  },
  "devDependencies": {
    "@types/node": "^20.14.0",
    "@types/react": "^18.3.3",
    "autoprefixer": "^10.4.19",
    "postcss": "^8.4.39",
    "tailwindcss": "^3.4.6",
    "typescript": "^5.5.3"
  }
}
`

const nextGlobalsCSS = `@tailwind base;
@tailwind components;
@tailwind utilities;

body {
  @apply bg-background text-foreground font-sans antialiased;
}
`

func generateNext(plan types.SitePlan) types.GeneratedFiles {
	p := paletteOf(plan.Style)

	page := fmt.Sprintf(`export default function Page() {
  return (
    <main>
%s    </main>
  );
}
`, sectionsJSX(plan, tailwindClasses, "      "))

	layout := fmt.Sprintf(`import type { Metadata } from "next";
import "./globals.css";

export const metadata: Metadata = {
  title: %s,
  description: %s,
};

export default function RootLayout({ children }: { children: React.ReactNode }) {
  return (
    <html lang=%s dir=%s>
      <body>{children}</body>
    </html>
  );
}
`, jsString(plan.Meta.Title), jsString(plan.Meta.Description),
		jsString(langOr(plan.Meta.Lang)), jsString(direction(plan.Meta.Lang)))

	tailwind := fmt.Sprintf(`/** @type {import('tailwindcss').Config} */
module.exports = {
  content: ["./app/**/*.{js,ts,jsx,tsx}"],
  theme: {
    extend: {
      colors: {
        primary: %s,
        secondary: %s,
        background: %s,
        foreground: %s,
      },
      fontFamily: {
        sans: [%s],
      },
    },
  },
  plugins: [],
};
`, jsString(p.Primary), jsString(p.Secondary), jsString(p.Background), jsString(p.Text), jsString(p.Font))

	return files(
		"package.json", nextPackageJSON,
		"app/page.tsx", page,
		"app/layout.tsx", layout,
		"app/globals.css", nextGlobalsCSS,
		"tailwind.config.js", tailwind,
	)
}
