package platform

import "testing"

func TestLookup(t *testing.T) {
	t.Run("known platform", func(t *testing.T) {
		p := Lookup("facebook")
		if p.Name != "Facebook" {
			t.Errorf("Name = %q, want Facebook", p.Name)
		}
		if p.Labels.Followers != "Friends" {
			t.Errorf("Followers label = %q, want Friends", p.Labels.Followers)
		}
	})

	t.Run("unknown platform falls back", func(t *testing.T) {
		p := Lookup("myspace")
		if p.Name != Default.Name {
			t.Errorf("Name = %q, want %q", p.Name, Default.Name)
		}
		if p.Slug != "default" {
			t.Errorf("Slug = %q, want default", p.Slug)
		}
	})

	t.Run("snapchat has no stats", func(t *testing.T) {
		p := Lookup("snapchat")
		if p.HasStats || p.ProfilePicture {
			t.Errorf("snapchat should have neither stats nor profile picture: %+v", p)
		}
	})
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("empty platform registry")
	}

	all[0].Name = "Mutated"
	if Lookup(all[0].Slug).Name == "Mutated" {
		t.Error("All leaks the internal registry")
	}
}
