package latex

// The layouts share one preamble style: fontspec under LuaLaTeX, page
// geometry sized for the Remarkable Paper Pro, and a \gw macro that
// stacks a Greek word over its gloss.

const portraitTemplate = `{{define "esv-portrait"}}\documentclass[10pt]{article}
\usepackage[paperwidth=179mm,paperheight=239mm,margin=14mm]{geometry}
\usepackage{fontspec}
\setmainfont{Gentium Plus}
\newfontfamily\greekfont{Gentium Plus}
\setlength{\parindent}{0pt}
\newcommand{\gw}[2]{\begin{tabular}[t]{@{}c@{}}{\greekfont #1}\\{\scriptsize #2}\end{tabular}\hspace{0.6em}}
\newcommand{\versenum}[1]{\textbf{\small #1}\hspace{0.4em}}
\begin{document}

\begin{center}{\LARGE\bfseries {{.Title}}}\end{center}
\bigskip

{{range .Chapters}}{{if .Number}}\section*{Chapter {{.Number}}}
{{end}}{{range .Verses}}{{if .Heading}}\subsection*{ {{- .Heading -}} }
{{end}}\versenum{ {{- .Number -}} }{{range .Words}}\gw{ {{- .Greek -}} }{ {{- .Gloss -}} }{{end}}

{{if .Texts}}{{with index .Texts 0}}{{if .Text}}\emph{ {{- .Text -}} }
{{end}}{{end}}{{end}}
\medskip

{{end}}{{end}}{{template "appendix" .}}\end{document}
{{end}}`

const landscapeTemplate = `{{define "multi-landscape"}}\documentclass[9pt]{extarticle}
\usepackage[paperwidth=239mm,paperheight=179mm,margin=12mm]{geometry}
\usepackage{fontspec}
\usepackage{tabularx}
\setmainfont{Gentium Plus}
\newfontfamily\greekfont{Gentium Plus}
\setlength{\parindent}{0pt}
\newcommand{\gw}[2]{\begin{tabular}[t]{@{}c@{}}{\greekfont #1}\\{\scriptsize #2}\end{tabular}\hspace{0.5em}}
\newcommand{\versenum}[1]{\textbf{\small #1}\hspace{0.4em}}
\begin{document}

\begin{center}{\LARGE\bfseries {{.Title}}}\end{center}
\bigskip

{{range .Chapters}}{{if .Number}}\section*{Chapter {{.Number}}}
{{end}}{{range .Verses}}{{if .Heading}}\subsection*{ {{- .Heading -}} }
{{end}}\versenum{ {{- .Number -}} }{{range .Words}}\gw{ {{- .Greek -}} }{ {{- .Gloss -}} }{{end}}

\nopagebreak
\begin{tabularx}{\textwidth}{ {{- range .Texts}}X{{end -}} }
{{range $i, $t := .Texts}}{{if $i}} & {{end}}\textsc{\footnotesize {{$t.Name}}}{{end}} \\
{{range $i, $t := .Texts}}{{if $i}} & {{end}}\small {{$t.Text}}{{end}} \\
\end{tabularx}
\medskip

{{end}}{{end}}{{template "appendix" .}}\end{document}
{{end}}`

const appendixTemplate = `{{define "appendix"}}{{if .Entries}}\clearpage
\section*{Lexicon}

{{range .Entries}}\noindent\textbf{ {{- .ID -}} } {\greekfont {{.Lemma}}}{{if .Translit}} \emph{ {{- .Translit -}} }{{end}}{{if .Derivation}} [{{.Derivation}}]{{end}}{{if .Definition}}: {{.Definition}}{{end}}{{if .KJVDef}} KJV: {{.KJVDef}}{{end}}{{if .Extended}}

{\small {{.Extended}}}{{end}}

\smallskip

{{end}}{{end}}{{end}}`
