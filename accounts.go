package omnifolio

import (
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"
)

// LoadAccounts reads all accounts in the directory tree rooted at dir.
//
// Any directory containing a config.json file is an account, and every
// subdirectory is searched, whether its parent is an account or not.
// Symbolic links to directories are followed, a link back to a directory
// being searched is a format error.
// Account IDs must be unique in the whole tree.
func (l *Loader) LoadAccounts(dir string) (map[string]*Account, error) {
	return l.loadAccountTree(dir, nil)
}

// loadAccountTree reads the accounts under dir, parents holds the resolved path of the directories being searched.
func (l *Loader) loadAccountTree(dir string, parents []string) (map[string]*Account, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ioError(dir, err)
	}
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return nil, ioError(dir, err)
	}
	if slices.Contains(parents, resolved) {
		return nil, formatError(dir, "symbolic link loop to %q", resolved)
	}
	parents = append(parents, resolved)

	accounts := make(map[string]*Account)
	if hasFile(entries, configFile) {
		acc, err := l.loadAccount(dir, hasFile(entries, transactionsFile))
		if err != nil {
			return nil, err
		}
		accounts[acc.ID] = acc
	}

	for _, e := range entries {
		ok, err := isDir(dir, e)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		children, err := l.loadAccountTree(filepath.Join(dir, e.Name()), slices.Clip(parents))
		if err != nil {
			return nil, err
		}
		// merge in a stable order so that the reported duplicate is always the same.
		for _, id := range slices.Sorted(maps.Keys(children)) {
			acc := children[id]
			if prev, exists := accounts[id]; exists {
				return nil, &DuplicateIDError{Scope: "account", ID: id, First: prev.Dir, Second: acc.Dir}
			}
			accounts[id] = acc
		}
	}
	return accounts, nil
}

// loadAccount reads the account defined in dir.
func (l *Loader) loadAccount(dir string, withTransactions bool) (*Account, error) {
	path := filepath.Join(dir, configFile)
	obj, err := ReadJSONObject(path)
	if err != nil {
		return nil, err
	}
	r := Record{obj, path, "account config"}

	acc := &Account{Dir: dir}
	if acc.ID, err = r.Identifier("id"); err != nil {
		return nil, err
	}
	if acc.Name, err = r.String("name"); err != nil {
		return nil, err
	}
	if acc.Currency, err = r.Enum("currency", currencyRule(l.Currencies)); err != nil {
		return nil, err
	}
	if withTransactions {
		if acc.Transactions, err = decodeTransactions(filepath.Join(dir, transactionsFile)); err != nil {
			return nil, err
		}
	}

	l.logger().WithFields(logrus.Fields{
		"dir":          dir,
		"account":      acc.ID,
		"transactions": len(acc.Transactions),
	}).Debug("account loaded")
	return acc, nil
}

// decodeTransactions reads a transactions file, keeping the file order.
func decodeTransactions(path string) ([]Transaction, error) {
	list, err := ReadJSONArray(path)
	if err != nil {
		return nil, err
	}
	txs := make([]Transaction, 0, len(list))
	for i, v := range list {
		r, err := AsRecord(v, path, fmt.Sprintf("transaction #%d", i+1))
		if err != nil {
			return nil, err
		}
		tx, err := DecodeTransaction(r)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// hasFile returns true if entries contain a regular file with that name.
func hasFile(entries []fs.DirEntry, name string) bool {
	for _, e := range entries {
		if e.Name() == name && !e.IsDir() {
			return true
		}
	}
	return false
}
