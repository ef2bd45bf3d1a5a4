package entities

import "sort"

// MergeFolders calcula o conjunto de pastas de um cliente: a união dos
// ClientFolder explícitos com os folderPath distintos observados nos
// documentos. O resultado é ordenado e sem duplicatas.
func MergeFolders(explicit []*ClientFolder, documents []*Document) []string {
	seen := make(map[string]struct{}, len(explicit)+len(documents))
	names := make([]string, 0, len(explicit)+len(documents))

	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, f := range explicit {
		add(f.Name)
	}
	for _, d := range documents {
		add(d.Folder())
	}

	sort.Strings(names)
	return names
}

// FolderGroup agrupa documentos de uma mesma pasta ("" é a raiz)
type FolderGroup struct {
	Folder    string
	Documents []*Document
}

// GroupByFolder agrupa documentos preservando a ordem em que cada pasta
// aparece pela primeira vez
func GroupByFolder(documents []*Document) []FolderGroup {
	index := make(map[string]int)
	groups := make([]FolderGroup, 0)

	for _, d := range documents {
		key := d.Folder()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, FolderGroup{Folder: key})
		}
		groups[i].Documents = append(groups[i].Documents, d)
	}

	return groups
}

// EmptyFolders retorna os ClientFolder explícitos sem nenhum documento
func EmptyFolders(explicit []*ClientFolder, documents []*Document) []*ClientFolder {
	used := make(map[string]struct{}, len(documents))
	for _, d := range documents {
		used[d.Folder()] = struct{}{}
	}

	empty := make([]*ClientFolder, 0)
	for _, f := range explicit {
		if _, ok := used[f.Name]; !ok {
			empty = append(empty, f)
		}
	}
	return empty
}
