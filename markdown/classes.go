package markdown

// Kind names a structural element of a post body.
type Kind string

const (
	KindHeading1      Kind = "h1"
	KindHeading2      Kind = "h2"
	KindHeading3      Kind = "h3"
	KindParagraph     Kind = "p"
	KindLink          Kind = "a"
	KindImage         Kind = "img"
	KindInlineCode    Kind = "code"
	KindCodeBlock     Kind = "pre"
	KindBlockquote    Kind = "blockquote"
	KindUnorderedList Kind = "ul"
	KindOrderedList   Kind = "ol"
)

// Classes maps each element kind to the CSS classes it is rendered with.
// Kinds missing from the table (h4 and below, tables, hr) render bare.
var Classes = map[Kind]string{
	KindHeading1:      "text-4xl font-bold mt-8 mb-4 text-slate-900 dark:text-slate-100",
	KindHeading2:      "text-3xl font-semibold mt-8 mb-4 text-slate-900 dark:text-slate-100",
	KindHeading3:      "text-2xl font-semibold mt-6 mb-3 text-slate-900 dark:text-slate-100",
	KindParagraph:     "mb-4 text-slate-700 dark:text-slate-300 leading-relaxed",
	KindLink:          "text-slate-900 dark:text-slate-100 underline hover:no-underline font-medium",
	KindImage:         "rounded-lg my-8 w-full h-auto",
	KindInlineCode:    "bg-slate-100 dark:bg-slate-800 px-2 py-1 rounded text-sm font-mono",
	KindCodeBlock:     "bg-slate-900 dark:bg-slate-800 p-4 rounded-lg overflow-x-auto my-6 border border-slate-200 dark:border-slate-700",
	KindBlockquote:    "border-l-4 border-slate-300 dark:border-slate-600 pl-4 my-6 italic text-slate-600 dark:text-slate-400",
	KindUnorderedList: "list-disc list-inside mb-4 space-y-2 text-slate-700 dark:text-slate-300",
	KindOrderedList:   "list-decimal list-inside mb-4 space-y-2 text-slate-700 dark:text-slate-300",
}

// codeBlockInner is applied to the <code> element inside a code block.
const codeBlockInner = "text-slate-100 text-sm"

func headingKind(level int) Kind {
	switch level {
	case 1:
		return KindHeading1
	case 2:
		return KindHeading2
	case 3:
		return KindHeading3
	}
	return ""
}
